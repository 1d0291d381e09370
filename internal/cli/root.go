package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fir/internal/report"
	"github.com/vvka-141/fir/pkg/fir"
)

var rootCmd = &cobra.Command{
	Use:   "fir <target> [search_root]",
	Short: "Find the files that import a given file",
	Long: `fir lists every source file under search_root that imports <target>,
one block per file with jumpable path#line locations, and flags imports whose
identifier is never used outside the import statement.

The search root defaults to ./src. Directories and files whose names contain
an entry of .gitignore, .git, dist or node_modules are skipped.

Match modes:
  path - <target> must follow a path separator ("./utils", "../lib/utils")
         on a non-comment line that looks like an import (default)
  word - legacy: <target> as a whole word on a line with import or require

Configuration is read from ` + "`.fir.yaml`" + ` and ` + "`.env`" + ` in the working
directory. Precedence: flags > FIR_* environment variables > .fir.yaml > defaults.

Exit Codes:
  0  - Success (including no matches)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Search root not found
  21 - Empty search target`,
	Example: `  fir utils.js
  fir utils.js ./app --ext js --ext jsx
  fir Button.tsx --mode word --unused-only
  fir api.js --format json > refs.json`,
	Args:              RequireTarget,
	ValidArgsFunction: completeSearchArgs,
	RunE:              runSearch,
	SilenceUsage:      true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fir")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	rootCmd.Flags().StringSliceVar(&searchFlags.extensions, "ext", nil,
		"Only scan files with these extensions (can be specified multiple times)\n"+
			"Overrides extensions and extension_map from .fir.yaml\n"+
			"Example: --ext js --ext jsx")
	rootCmd.Flags().StringVar(&searchFlags.mode, "mode", "",
		fmt.Sprintf("Match mode: %s or %s (default %s, overrides $FIR_MODE)",
			fir.ModePathSegment, fir.ModeWord, fir.ModePathSegment))
	rootCmd.Flags().StringVar(&searchFlags.ignoreFile, "ignore-file", "",
		fmt.Sprintf("Ignore file with one entry per line (default %s, overrides $FIR_IGNORE_FILE)", fir.DefaultIgnoreFile))
	rootCmd.Flags().StringSliceVar(&searchFlags.ignore, "ignore", nil,
		"Additional ignore entries (can be specified multiple times)")
	rootCmd.Flags().StringVar(&searchFlags.format, "format", "",
		fmt.Sprintf("Output format: %s, %s or %s (default %s, overrides $FIR_FORMAT)",
			report.FormatText, report.FormatJSON, report.FormatYAML, report.FormatText))
	rootCmd.Flags().BoolVar(&searchFlags.unusedOnly, "unused-only", false,
		"Only report imports whose identifier is never used")
	rootCmd.Flags().StringVar(&searchFlags.configPath, "config", "",
		"Config file path (default ./.fir.yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", completeModes)
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFormats)
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
