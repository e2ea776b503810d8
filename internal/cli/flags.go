package cli

import "github.com/spf13/pflag"

// addYesFlag registers the shared -y/--yes confirmation bypass.
func addYesFlag(fs *pflag.FlagSet, yes *bool) {
	fs.BoolVarP(yes, "yes", "y", false, "Skip the confirmation prompt")
}
