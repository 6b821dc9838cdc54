// Package cmd implements the CLI commands for tallylog.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/tallylog/internal/config"
	"github.com/mordilloSan/tallylog/logger"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// rootOptions holds persistent flag values and the logger built from them.
type rootOptions struct {
	configPath   string
	envFile      string
	level        uint
	color        string
	messageLimit int

	log *logger.Logger
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "tallylog",
		Short: "Counting leveled logger with block timing",
		Long: `tallylog drives the counting logger from the command line.

Every accepted message is tagged with its per-level counter and a summary of
all counters is printed on exit. The threshold comes from LOG_LEVEL
(0=none, 1=error, 2=warning, 3=debug) unless --log-level or a config file
sets it. Special messages, used for timing reports, are always printed.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return opts.setup(c)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file loaded before LOG_LEVEL is read")
	flags.UintVar(&opts.level, "log-level", uint(logger.DefaultThreshold), "threshold level code (overrides LOG_LEVEL)")
	flags.StringVar(&opts.color, "color", config.ColorAuto, "color level labels: auto, always or never")
	flags.IntVar(&opts.messageLimit, "message-limit", logger.DefaultMessageLimit, "truncate messages to this many bytes (negative disables)")

	root.AddCommand(newDemoCmd(opts), newEmitCmd(opts), newTimeCmd(opts))
	return root
}

// setup merges config file, env file and flags and installs the default logger.
func (o *rootOptions) setup(c *cobra.Command) error {
	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := c.Flags()
	if flags.Changed("env-file") {
		cfg.EnvFile = o.envFile
	}
	if cfg.EnvFile != "" {
		if err := config.LoadEnv(cfg.EnvFile); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		level := o.level
		cfg.Level = &level
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("message-limit") {
		cfg.MessageLimit = o.messageLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.log = logger.Init(cfg.Logger(c.OutOrStdout()))
	return nil
}

// Run executes the command tree with args, writing to out, and closes the
// default logger so its summary is printed.
func Run(args []string, out io.Writer) error {
	root := NewRootCmd()
	root.SetOut(out)
	root.SetArgs(args)
	defer logger.Close()
	return root.Execute()
}
