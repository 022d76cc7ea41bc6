// config_test.go - Unit Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"slices"
	"testing"
)

// TestVar testet das Entfernen von Quotes und Leerzeichen
func TestVar(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"xterm", "xterm"},
		{"  xterm ", "xterm"},
		{`"xterm"`, "xterm"},
		{"'vt100'", "vt100"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Setenv("TERM", tt.value)
		if got := Term(); got != tt.expected {
			t.Errorf("Term() mit %q = %q, erwartet %q", tt.value, got, tt.expected)
		}
	}
}

// TestTerminfoDirs testet das Aufteilen von TERMINFO_DIRS
func TestTerminfoDirs(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{"leer", "", nil},
		{"ein Eintrag", "/opt/terminfo", []string{"/opt/terminfo"}},
		{"mehrere", "/a:/b", []string{"/a", "/b"}},
		{"leere Eintraege werden uebersprungen", ":/a::/b:", []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERMINFO_DIRS", tt.value)
			if got := TerminfoDirs(); !slices.Equal(got, tt.expected) {
				t.Errorf("TerminfoDirs() = %v, erwartet %v", got, tt.expected)
			}
		})
	}
}

// TestUserTerminfo testet den Pfad unterhalb von HOME
func TestUserTerminfo(t *testing.T) {
	t.Setenv("HOME", "/home/user")
	if got := UserTerminfo(); got != "/home/user/.terminfo" {
		t.Errorf("UserTerminfo() = %q", got)
	}

	t.Setenv("HOME", "")
	if got := UserTerminfo(); got != "" {
		t.Errorf("UserTerminfo() ohne HOME = %q, erwartet leer", got)
	}
}

// TestLogLevel testet die Zuordnung von TERMLINE_DEBUG
func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}

	for value, expected := range tests {
		t.Setenv("TERMLINE_DEBUG", value)
		if got := LogLevel(); got != expected {
			t.Errorf("LogLevel() mit %q = %v, erwartet %v", value, got, expected)
		}
	}
}

// TestBool testet Boolean-Flags mit Default
func TestBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"ja", true}, // unlesbare Werte gelten als gesetzt
	}

	for _, tt := range tests {
		t.Setenv("TERMLINE_NOFASTLOAD", tt.value)
		if got := NoFastload(); got != tt.expected {
			t.Errorf("NoFastload() mit %q = %v, erwartet %v", tt.value, got, tt.expected)
		}
	}

	t.Setenv("TERMLINE_NOFASTLOAD", "")
	if !BoolWithDefault("TERMLINE_NOFASTLOAD")(true) {
		t.Error("Default true wurde nicht uebernommen")
	}
}

// TestAsMap prueft, dass alle Variablen exportiert werden
func TestAsMap(t *testing.T) {
	t.Setenv("TERM", "vt100")
	t.Setenv("TERMLINE_MASK", "#")

	m := AsMap()
	for _, key := range []string{"TERM", "TERMINFO", "TERMINFO_DIRS", "HOME", "TERMLINE_DEBUG", "TERMLINE_NOFASTLOAD", "TERMLINE_PROMPT", "TERMLINE_MASK"} {
		v, ok := m[key]
		if !ok {
			t.Errorf("AsMap() ohne %s", key)
			continue
		}
		if v.Name != key || v.Description == "" {
			t.Errorf("AsMap()[%s] = %+v", key, v)
		}
	}

	vals := Values()
	if vals["TERM"] != "vt100" || vals["TERMLINE_MASK"] != "#" {
		t.Errorf("Values() = %v", vals)
	}
}
