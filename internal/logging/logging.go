// Package logging builds the process-wide structured logger used by the
// match runtime in place of ad-hoc fmt.Println calls: a console encoder
// for local/dev use, a JSON encoder for production, both driven off the
// same level string.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's level and encoding. Level is any value
// zapcore.Level accepts ("debug", "info", "warn", "error"); Format is
// "json" or "console".
type Config struct {
	Level  string
	Format string
}

// New builds a *zap.Logger from cfg. An unparseable level falls back to
// info rather than failing start-up over a config typo.
func New(cfg Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// Nop returns a logger that discards everything, for tests and for any
// caller that hasn't wired a real sink yet.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// MatchFields builds the match-id/seat/command fields every match-scoped
// log line in internal/match carries (inbox/outbox drops, forced
// end_turn, idle timeout).
func MatchFields(matchID string, seat string, command string) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.String("match_id", matchID))
	if seat != "" {
		fields = append(fields, zap.String("seat", seat))
	}
	if command != "" {
		fields = append(fields, zap.String("command", command))
	}
	return fields
}
