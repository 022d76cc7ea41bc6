// config_features.go - Feature-Flags fuer termline
//
// Dieses Modul enthaelt:
// - Feature-Flags (NoFastload)
// - Default-Werte fuer das Demo-CLI
package envconfig

// =============================================================================
// Feature-Flags
// =============================================================================

var (
	// NoFastload deaktiviert die eingebaute xterm-Tabelle
	// Die Terminfo-Datenbank wird dann immer von Platte gelesen
	NoFastload = Bool("TERMLINE_NOFASTLOAD")
)

// =============================================================================
// CLI-Defaults
// =============================================================================

var (
	// Prompt ueberschreibt den Standard-Prompt des CLI
	Prompt = String("TERMLINE_PROMPT")

	// Mask ueberschreibt das Ersatzzeichen fuer maskierte Eingabe
	Mask = String("TERMLINE_MASK")
)
