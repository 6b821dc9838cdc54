package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/tallylog/logger"
)

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var level uint
	var repeat int

	c := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Log a message at the given level",
		Example: `  tallylog emit --level 2 disk almost full
  LOG_LEVEL=3 tallylog emit --level 3 --repeat 5 polling`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
			}
			msg := strings.Join(args, " ")
			for n := 0; n < repeat; n++ {
				opts.log.Logf(logger.Level(level), "%s", msg)
			}
			return nil
		},
	}
	c.Flags().UintVar(&level, "level", uint(logger.ErrorLevel), "level code of the message (1=error, 2=warning, 3=debug, 4=special)")
	c.Flags().IntVar(&repeat, "repeat", 1, "number of times to log the message")
	return c
}
