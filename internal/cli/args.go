package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireTarget validates that a <target> argument and at most one
// [search_root] argument are provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireTarget(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <target>

Usage: %s

Example:
  %s utils.js ./src`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts between 1 and 2 arg(s), received %d", len(args))
	}
	return nil
}
