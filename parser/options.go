package parser

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/internal/options"
)

// Option configures a Parser.
type Option = options.Option[*config]

type config struct {
	logger       logrus.FieldLogger
	gasMixEvents bool
	maxRecords   int
}

// discardLogger is used when no logger is configured.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

func defaultConfig() *config {
	return &config{
		logger:       discardLogger,
		gasMixEvents: true,
	}
}

// WithLogger enables advisory diagnostics.
//
// Decoding failures are always reported through returned errors; the logger only
// receives additional context. A nil logger restores the default, which discards output.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			c.logger = discardLogger
			return
		}
		c.logger = logger
	})
}

// WithGasMixEvents controls whether gas mix change events are emitted for open-circuit
// dives. Enabled by default.
func WithGasMixEvents(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.gasMixEvents = enabled
	})
}

// WithMaxRecords limits the number of sample records emitted per walk.
// Each record starts with a time event. Zero means unlimited.
func WithMaxRecords(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: max records %d", errs.ErrInvalidArgs, n)
		}
		c.maxRecords = n

		return nil
	})
}
