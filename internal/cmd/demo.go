package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/tallylog/logger"
)

func newDemoCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Log one message at every level",
		Long: `Log one message at error, debug, warning and special level through the
package-level functions. With the default threshold only the error and the
special line are printed.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			logger.Logf(logger.ErrorLevel, "log_error")
			logger.Logf(logger.DebugLevel, "log_debug")
			logger.Logf(logger.WarningLevel, "log_warning")
			logger.Logf(logger.SpecialLevel, "log_special")
		},
	}
}
