package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fpt/internal/domain"
)

// Scanner locates plugin artifacts in the plugin build directory
type Scanner struct {
	dir string
	ext string
}

// NewScanner creates a new Scanner over the given plugin directory and
// library extension
func NewScanner(dir, ext string) *Scanner {
	return &Scanner{dir: dir, ext: ext}
}

// Dir returns the scanned plugin directory
func (s *Scanner) Dir() string {
	return s.dir
}

// Locate returns the full path of the case's plugin artifact and whether
// the file exists
func (s *Scanner) Locate(c domain.TestCase) (string, bool) {
	path := filepath.Join(s.dir, c.ArtifactFile(s.ext))
	info, err := os.Stat(path)
	return path, err == nil && info.Mode().IsRegular()
}

// Scan lists the plugin library files present in the plugin directory
func (s *Scanner) Scan() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan plugin directory: %w", err)
	}

	var libs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "lib") && strings.HasSuffix(name, s.ext) {
			libs = append(libs, name)
		}
	}

	return libs, nil
}
