package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/amirrezaask/sumtype/env"
	"github.com/amirrezaask/sumtype/errors"
)

type Config struct {
	DebugMode    bool
	LogLevel     slog.Level
	SentryConfig sentry.ClientOptions

	// Output defaults to os.Stdout.
	Output io.Writer
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// ConfigFromEnv reads LOG_LEVEL, LOG_DEBUG, SENTRY_DSN and
// SENTRY_ENVIRONMENT. SENTRY_ENVIRONMENT is required once SENTRY_DSN is set.
func ConfigFromEnv() (Config, error) {
	debug, err := env.GetEnvBool("LOG_DEBUG", false)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		DebugMode: debug,
		LogLevel:  ParseLevel(env.GetEnvDefault("LOG_LEVEL", "error")),
	}
	if c.DebugMode {
		c.LogLevel = slog.LevelDebug
	}

	if dsn, ok := env.Lookup("SENTRY_DSN"); ok {
		environment, ok := env.Lookup("SENTRY_ENVIRONMENT")
		if !ok {
			return Config{}, errors.New("SENTRY_ENVIRONMENT is required when SENTRY_DSN is set")
		}
		c.SentryConfig = sentry.ClientOptions{Dsn: dsn, Environment: environment}
	}
	return c, nil
}

// New builds the fan-out logger described by c without installing it.
func New(c Config) (*slog.Logger, error) {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	handlers := []slog.Handler{
		slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     c.LogLevel,
			AddSource: true,
		}),
	}

	if c.SentryConfig.Dsn != "" && c.SentryConfig.Environment != "" {
		if err := sentry.Init(c.SentryConfig); err != nil {
			return nil, errors.Wrap(err, "initializing sentry for %s", c.SentryConfig.Environment)
		}
		handlers = append(handlers, slogsentry.Option{
			Level:     slog.LevelWarn,
			AddSource: true,
		}.NewSentryHandler())
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Init installs the logger built from c as the slog default.
func Init(c Config) error {
	logger, err := New(c)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
