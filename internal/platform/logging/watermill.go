package logging

import (
	"github.com/ThreeDotsLabs/watermill"
)

type watermillAdapter struct {
	logger *Logger
	fields watermill.LogFields
}

// Watermill adapts the logger for watermill routers and pub/subs.
func (l *Logger) Watermill() watermill.LoggerAdapter {
	return &watermillAdapter{logger: l}
}

func (a *watermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(a.args(fields), "error", err)...)
}

func (a *watermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(msg, a.args(fields)...)
}

func (a *watermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, a.args(fields)...)
}

// Trace is mapped to debug; zap has no trace level.
func (a *watermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, a.args(fields)...)
}

func (a *watermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &watermillAdapter{logger: a.logger, fields: a.fields.Add(fields)}
}

func (a *watermillAdapter) args(fields watermill.LogFields) []any {
	merged := a.fields.Add(fields)
	out := make([]any, 0, len(merged)*2)
	for key, value := range merged {
		out = append(out, key, value)
	}
	return out
}
