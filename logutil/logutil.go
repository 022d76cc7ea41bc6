// Package logutil - Logger-Konfiguration
//
// Baut den slog-Logger fuer CLI und Bibliothek. Das Log-Level kommt aus
// envconfig.LogLevel(), zusaetzlich gibt es ein TRACE-Level unterhalb von DEBUG
// fuer einzelne Tastatur-Events.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace liegt unterhalb von slog.LevelDebug (TERMLINE_DEBUG=2)
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger mit gekuerztem Source-Pfad
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace loggt auf TRACE-Level ueber den Default-Logger
func Trace(msg string, args ...any) {
	slog.Log(context.TODO(), LevelTrace, msg, args...)
}
