// Package log provides configurable zap logger creation for the table
// hunting engine's optional diagnostic tracing.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the logger's output format.
type Style string

const (
	StyleNoop     Style = "noop"
	StyleTerminal Style = "terminal"
	StyleJSON     Style = "json"
)

// Config configures New.
type Config struct {
	Style Style
	Level string // zapcore level name, e.g. "debug", "info", "warn"
}

// New creates a zap logger based on cfg. A nil cfg, or one with empty
// fields, defaults to terminal style at info level.
func New(cfg *Config) (*zap.Logger, error) {
	style := StyleTerminal
	level := zapcore.InfoLevel

	if cfg != nil {
		if cfg.Style != "" {
			style = cfg.Style
		}
		if cfg.Level != "" {
			lvl, err := zapcore.ParseLevel(cfg.Level)
			if err == nil {
				level = lvl
			}
		}
	}

	switch style {
	case StyleNoop:
		return zap.NewNop(), nil
	case StyleJSON:
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build(zap.AddCaller())
	case StyleTerminal:
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build(zap.AddCaller())
	default:
		return nil, fmt.Errorf("invalid logging style %q: must be one of: terminal, json, noop", style)
	}
}

// Must is New, panicking on error — convenient for CLI setup where a bad
// logging config should fail fast.
func Must(cfg *Config) *zap.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}
