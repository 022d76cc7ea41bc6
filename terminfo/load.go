// load.go - Suche der Terminfo-Datei
//
// Reihenfolge: eingebaute Tabelle, $TERMINFO, $HOME/.terminfo,
// $TERMINFO_DIRS, danach die System-Verzeichnisse. Das erste Verzeichnis mit
// <dir>/<Anfangsbuchstabe>/<name> gewinnt; das Hash-Layout von macOS
// (<dir>/<hex>/<name>) wird ebenfalls akzeptiert.
package terminfo

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ollama/termline/envconfig"
)

var systemDirs = []string{
	"/usr/share/terminfo",
	"/etc/terminfo",
	"/lib/terminfo",
	"/usr/lib/terminfo",
}

// Load laedt die Capabilities fuer $TERM
func Load() (*Store, error) {
	return LoadTerm(envconfig.Term())
}

// LoadTerm laedt die Capabilities fuer einen expliziten Terminal-Typ
func LoadTerm(name string) (*Store, error) {
	if name == "" {
		return nil, ErrNotConfigured
	}

	if !envconfig.NoFastload() {
		if s, ok := fastload(name); ok {
			slog.Debug("terminfo fastload", "term", name)
			return s, nil
		}
	}

	f, path, err := find(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := parse(f, name, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("terminfo loaded", "term", name, "path", path, "status", s.Status(), "missing", s.Missing())
	return s, nil
}

// SearchPath gibt die Verzeichnisse in Suchreihenfolge zurueck
func SearchPath() []string {
	var dirs []string
	if dir := envconfig.Terminfo(); dir != "" {
		dirs = append(dirs, dir)
	}
	if dir := envconfig.UserTerminfo(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, envconfig.TerminfoDirs()...)
	return append(dirs, systemDirs...)
}

func find(name string) (*os.File, string, error) {
	if strings.ContainsRune(name, '/') || name == "." || name == ".." {
		return nil, "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	for _, dir := range SearchPath() {
		for _, path := range candidates(dir, name) {
			f, err := os.Open(path)
			if err == nil {
				return f, path, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Debug("terminfo candidate unreadable", "path", path, "error", err)
			}
		}
	}

	return nil, "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

func candidates(dir, name string) []string {
	return []string{
		filepath.Join(dir, name[:1], name),
		filepath.Join(dir, fmt.Sprintf("%02x", name[0]), name),
	}
}
