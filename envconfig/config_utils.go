// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String: String-Getter
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TERM":                {"TERM", Term(), "Terminal type used to look up key and cursor sequences"},
		"TERMINFO":            {"TERMINFO", Terminfo(), "Terminfo database directory searched first"},
		"TERMINFO_DIRS":       {"TERMINFO_DIRS", strings.Join(TerminfoDirs(), ":"), "Colon separated list of additional terminfo directories"},
		"HOME":                {"HOME", Home(), "Home directory; $HOME/.terminfo is searched after TERMINFO"},
		"TERMLINE_DEBUG":      {"TERMLINE_DEBUG", LogLevel(), "Show additional debug information (e.g. TERMLINE_DEBUG=1)"},
		"TERMLINE_NOFASTLOAD": {"TERMLINE_NOFASTLOAD", NoFastload(), "Always read the terminfo database, even for xterm"},
		"TERMLINE_PROMPT":     {"TERMLINE_PROMPT", Prompt(), "Default prompt for the read command"},
		"TERMLINE_MASK":       {"TERMLINE_MASK", Mask(), "Default mask character for masked echo"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
