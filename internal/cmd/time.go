package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/tallylog/logger"
)

func newTimeCmd(opts *rootOptions) *cobra.Command {
	var blocks int
	var sleep time.Duration

	c := &cobra.Command{
		Use:   "time",
		Short: "Time a number of sleeping blocks",
		Long: `Run --blocks sequential blocks that each sleep for --sleep, report every
block at special level and finish with the average and longest block.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if blocks < 1 {
				return fmt.Errorf("--blocks must be at least 1, got %d", blocks)
			}
			ctx := c.Context()
			for i := 0; i < blocks; i++ {
				name := fmt.Sprintf("block %d", i+1)
				err := opts.log.Time(name, func() error {
					return sleepContext(ctx, sleep)
				})
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			opts.log.Specialf("Average time of %d blocks = %2.4f sec (max %2.4f)",
				blocks, opts.log.LastTime(logger.TimeAverage), opts.log.LastTime(logger.TimeMax))
			return nil
		},
	}
	c.Flags().IntVar(&blocks, "blocks", 3, "number of blocks to time")
	c.Flags().DurationVar(&sleep, "sleep", 10*time.Millisecond, "how long each block sleeps")
	return c
}

// sleepContext sleeps for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
