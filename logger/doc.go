// Package logger provides a small leveled logger that counts every accepted
// message per level, prints a per-level summary on shutdown and times blocks
// of code through the same output.
//
// # Output
//
// Every line goes to a single writer (os.Stdout by default):
//
//	[LOGGER][error  ][    0] - connection refused
//	[LOGGER][special][    0] - Elapsed time of load = 0.0123 sec (0.0456 cumulative)
//
// The bracketed number is the level's counter before the message was counted,
// so the first message at a level shows 0. Close prints the summary:
//
//	SUMMARY
//	-------------------------------------------------
//	[error  ] =     1
//	[warning] =     0
//	[debug  ] =     0
//	[special] =     1
//
// # Levels
//
// Levels are ordered NoneLevel < ErrorLevel < WarningLevel < DebugLevel.
// A message is emitted when its level is not above the threshold.
// SpecialLevel is always emitted and is used by timers.
//
// # Usage
//
// Use the package-level functions; the default logger is created on first use
// and reads its threshold from the environment:
//
//	LOG_LEVEL=3 ./myapp
//
//	defer logger.Close()
//	logger.Errorf("failed to connect: %v", err)
//	logger.Debugf("retrying in %s", backoff)
//
// Or own an explicit Logger and pass it around:
//
//	log := logger.New(logger.Config{Threshold: logger.Threshold(logger.WarningLevel)})
//	defer log.Close()
//
// Time a block:
//
//	defer logger.StartTimer("index rebuild").Stop()
//
// A malformed LOG_LEVEL falls back to ErrorLevel, long messages are truncated
// and nothing in this package returns an error or panics.
package logger
