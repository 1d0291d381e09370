package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fir/internal/report"
	"github.com/vvka-141/fir/pkg/fir"
)

// matchModes contains valid match modes for shell completion.
var matchModes = []string{string(fir.ModePathSegment), string(fir.ModeWord)}

func completeFromList(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeModes provides shell completion for the --mode flag.
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(matchModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for the --format flag.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		formats = append(formats, string(f))
	}
	return completeFromList(formats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSearchArgs completes file names for <target> and directories for [search_root].
func completeSearchArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return nil, cobra.ShellCompDirectiveDefault
	case 1:
		// Let the shell handle directory completion
		return nil, cobra.ShellCompDirectiveFilterDirs
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
