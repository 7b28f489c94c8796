package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/jatsmeta/internal/checksum"
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/internal/files/scanner"
	"github.com/vvka-141/jatsmeta/internal/identity"
	"github.com/vvka-141/jatsmeta/internal/xmltree"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate the metadata of one article or a directory of articles",
	Long: `Validate article metadata. A directory is searched recursively for
*.xml files; hidden directories are skipped.

Configuration is read from jatsmeta.yaml in the working directory (or
--config), then .env and the environment (JATSMETA_ERROR_LEVEL,
JATSMETA_GRANULARITY, JATSMETA_FAIL_LEVEL), then flags.

Examples:
  # Validate one article
  jatsmeta validate article.xml

  # Validate a package directory and emit JSON
  jatsmeta validate ./packages --json

  # Check related-article types against the whole document
  jatsmeta validate article.xml --granularity document`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

type validateOptions struct {
	json        bool
	all         bool
	configPath  string
	granularity string
	failLevel   string
	jobs        int
}

var validateFlags validateOptions

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false, "Output reports as JSON")
	validateCmd.Flags().BoolVar(&validateFlags.all, "all", false, "List passing checks in text output")
	validateCmd.Flags().StringVar(&validateFlags.configPath, "config", "", "Path to a config file (default: ./jatsmeta.yaml if present)")
	validateCmd.Flags().StringVar(&validateFlags.granularity, "granularity", "", "Related-article scope: scope or document")
	validateCmd.Flags().StringVar(&validateFlags.failLevel, "fail-level", "", "Lowest error level that fails the run (default: ERROR)")
	validateCmd.Flags().IntVarP(&validateFlags.jobs, "jobs", "j", 0, "Documents validated in parallel (default: number of CPUs)")

	_ = validateCmd.RegisterFlagCompletionFunc("granularity", completeGranularity)
	_ = validateCmd.RegisterFlagCompletionFunc("fail-level", completeSeverity)
}

func resetValidateFlags() {
	validateFlags = validateOptions{}
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	s, err := loadSettings(validateFlags.configPath, validateFlags.granularity, validateFlags.failLevel, logger)
	if err != nil {
		return err
	}

	docs, err := scanner.NewScannerWithFS(fileSystem).Scan(args[0])
	if err != nil {
		return err
	}
	logger.Verbose("found %d document(s) under %s", len(docs), args[0])

	reports, malformed, err := validateDocuments(cmd.Context(), engine.New(s.options), docs, s.threshold, validateFlags.jobs, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if validateFlags.json {
		if err := diagnostic.WriteJSON(out, reports); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	} else {
		styled := isStyledOutput(out)
		for _, r := range reports {
			if err := diagnostic.WriteText(out, r, styled, validateFlags.all); err != nil {
				return err
			}
		}
	}

	failures, failedDocs := 0, 0
	for _, r := range reports {
		failures += r.Summary.Failures
		if r.Summary.Failures > 0 {
			failedDocs++
		}
	}
	switch {
	case failures > 0:
		return fmt.Errorf("%w: %d diagnostic(s) at %s or above in %d of %d document(s)",
			jatsmeta.ErrValidationFailed, failures, s.threshold, failedDocs, len(docs))
	case malformed > 0:
		return fmt.Errorf("%w: %d of %d document(s) could not be parsed", jatsmeta.ErrMalformedXML, malformed, len(docs))
	}
	return nil
}

// validateDocuments parses and validates documents concurrently. Reports
// keep the scan order; documents that fail to parse are logged and counted.
func validateDocuments(ctx context.Context, eng *engine.Engine, docs []scanner.Document, threshold jatsmeta.Severity, jobs int, logger jatsmeta.Logger) ([]diagnostic.Report, int, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*diagnostic.Report, len(docs))
	sums := checksum.New()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := doc.Content()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", doc.Path, err)
			}
			root, err := xmltree.ParseBytes(content)
			if err != nil {
				logger.Error("%s: %v", doc.Path, err)
				return nil
			}
			logger.Verbose("validating %s", doc.Path)
			diagnostics := slices.Collect(eng.Validate(root))
			report := diagnostic.NewReport(identity.DocumentID(root, doc.RelativePath).String(), doc.Path, diagnostics, threshold)
			report.Checksum = sums.CalculateNormalized(content)
			results[i] = &report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	reports := make([]diagnostic.Report, 0, len(docs))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, len(docs) - len(reports), nil
}

func isStyledOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && diagnostic.IsTerminal(f)
}
