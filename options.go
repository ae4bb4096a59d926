package dynarr

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Policy selects what happens when an operation hits a contract violation
// or an allocation failure.
type Policy uint8

const (
	// PolicyPanic panics with the *ContractViolation or *AllocationFailure.
	// This is the default and the only policy Try can recover from.
	PolicyPanic Policy = iota
	// PolicyAbort writes the diagnostic through the configured logger at
	// fatal level and terminates the process.
	PolicyAbort
)

func (p Policy) String() string {
	switch p {
	case PolicyPanic:
		return "panic"
	case PolicyAbort:
		return "abort"
	}
	return "unknown"
}

// DefaultCapacity is the capacity of a freshly constructed array.
const DefaultCapacity = 1

type config struct {
	policy   Policy
	checks   bool
	logger   *zap.Logger
	capacity int
}

// Option configures an Array, Blob or SafeArray at construction.
type Option func(*config)

// WithPolicy sets the failure policy. The default is PolicyPanic.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithLogger sets the logger PolicyAbort reports through. A nil logger
// restores the default stderr console logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithBoundsChecks toggles index and range validation. Checks are on by
// default.
//
// With checks off the caller is trusted: a logical index past the live
// range but inside the allocation silently reads or writes slack slots,
// and one past the allocation trips the Go runtime's own index panic.
// Only disable checks for code that is already proven correct.
func WithBoundsChecks(on bool) Option {
	return func(c *config) { c.checks = on }
}

// Unchecked is shorthand for WithBoundsChecks(false).
func Unchecked() Option {
	return WithBoundsChecks(false)
}

// WithCapacity sets the initial capacity in elements.
// If n <= 0, DefaultCapacity is used.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

func newConfig(opts []Option) *config {
	c := &config{policy: PolicyPanic, checks: true, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity <= 0 {
		c.capacity = DefaultCapacity
	}
	return c
}

// fail raises err according to the policy. It never returns.
func (c *config) fail(err error) {
	if c.policy == PolicyAbort {
		l := c.logger
		if l == nil {
			l = stderrLogger()
		}
		switch v := err.(type) {
		case *ContractViolation:
			l.Fatal(err.Error(), zap.Object("violation", v))
		case *AllocationFailure:
			l.Fatal(err.Error(), zap.Object("allocation", v))
		default:
			l.Fatal(err.Error())
		}
	}
	// Reached under PolicyPanic, or when a fatal hook declined to exit.
	panic(err)
}

func stderrLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zapcore.ErrorLevel)
	return zap.New(core)
}
