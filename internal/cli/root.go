package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/jatsmeta/internal/logging"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

var rootCmd = &cobra.Command{
	Use:   "jatsmeta",
	Short: "Metadata validation for JATS/SPS articles",
	Long: `jatsmeta checks the metadata of JATS/SPS XML articles: related-article
types against the article type, the history events those references imply,
preprint consistency and article dates. Every check, passing or failing,
is reported as a structured diagnostic.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or correspondence table
  11 - A document could not be parsed
  12 - Validation failed at or above the fail level
  13 - No XML documents found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func newLogger(cmd *cobra.Command) jatsmeta.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
