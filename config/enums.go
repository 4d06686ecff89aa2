package config

import "go.uber.org/zap/zapcore"

//go:generate go tool go-enum --marshal --names --nocase

// Specification of variable reference cycle reporting.
// ENUM(none, debug, warn)
type CycleReport int

// Level returns the zap level cycles are logged at and whether they are
// logged at all.
func (c CycleReport) Level() (zapcore.Level, bool) {
	switch c {
	case CycleReportDebug:
		return zapcore.DebugLevel, true
	case CycleReportWarn:
		return zapcore.WarnLevel, true
	default:
		return zapcore.DebugLevel, false
	}
}
