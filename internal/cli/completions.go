package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

var severities = []string{
	string(jatsmeta.SevCritical),
	string(jatsmeta.SevError),
	string(jatsmeta.SevWarning),
	string(jatsmeta.SevInfo),
}

var granularities = []string{string(engine.GranularityScope), string(engine.GranularityDocument)}

func completeSeverity(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(severities, strings.ToUpper(toComplete)), cobra.ShellCompDirectiveNoFileComp
}

func completeGranularity(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(granularities, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func withPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}
