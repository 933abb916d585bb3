package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/utils/logger/handlers/slogpretty"
)

type options struct {
	out   io.Writer
	debug bool
}

type Option func(*options)

// WithOutput направляет вывод логгера в w (по умолчанию os.Stderr)
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithDebug включает уровень DEBUG независимо от окружения
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// New создает логгер для окружения env: local - цветной вывод, dev - JSON с
// DEBUG, prod - JSON с INFO
func New(env string, opts ...Option) *slog.Logger {
	o := options{out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		level := slog.LevelInfo
		if o.debug {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: level}))
	default:
		log = setupPrettySlog(o.out)
	}

	return log
}

func setupPrettySlog(out io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}

// Discard возвращает логгер, который ничего не пишет (для тестов)
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
