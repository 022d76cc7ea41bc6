// config.go - Haupt-Konfigurationsfunktionen fuer termline
//
// Dieses Modul enthaelt:
// - Term: Gibt den Terminal-Typ zurueck (TERM)
// - Terminfo: Gibt das Override-Verzeichnis der Terminfo-Datenbank zurueck (TERMINFO)
// - TerminfoDirs: Gibt zusaetzliche Datenbank-Verzeichnisse zurueck (TERMINFO_DIRS)
// - Home: Gibt das Home-Verzeichnis zurueck (HOME)
// - LogLevel: Gibt Log-Level zurueck (TERMLINE_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Feature-Flags
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Term gibt den Terminal-Typ zurueck
// Konfigurierbar via TERM, ohne Default
func Term() string {
	return Var("TERM")
}

// Terminfo gibt das explizite Datenbank-Verzeichnis zurueck
// Konfigurierbar via TERMINFO
func Terminfo() string {
	return Var("TERMINFO")
}

// TerminfoDirs gibt die Verzeichnisse aus TERMINFO_DIRS zurueck
// Leere Eintraege werden uebersprungen
func TerminfoDirs() (dirs []string) {
	for _, dir := range strings.Split(Var("TERMINFO_DIRS"), ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Home gibt das Home-Verzeichnis zurueck
// Konfigurierbar via HOME, leer wenn nicht gesetzt
func Home() string {
	return Var("HOME")
}

// UserTerminfo gibt die benutzerspezifische Datenbank zurueck
// Default: $HOME/.terminfo, leer ohne HOME
func UserTerminfo() string {
	home := Home()
	if home == "" {
		return ""
	}

	return filepath.Join(home, ".terminfo")
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via TERMLINE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TERMLINE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
