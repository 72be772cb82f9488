package platform

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// strategy attempts one path conversion scheme. The second return value
// reports whether the scheme applied; the chain stops at the first match.
type strategy func(path string) (string, bool)

// Converter rewrites shell paths into a form the ffmpeg binary accepts on
// the host. MSYS and Cygwin shells hand out POSIX-style paths (/c/Users/..,
// /cygdrive/c/..) that a native Windows ffmpeg cannot open.
type Converter struct {
	chain []strategy
}

var (
	driveLetterRe = regexp.MustCompile(`^/([A-Za-z])/(.*)$`)
	cygdriveRe    = regexp.MustCompile(`^/cygdrive/([A-Za-z])/(.*)$`)
)

// NewConverter builds the conversion chain for the host. On non-Windows
// hosts the chain is empty and Convert only normalizes separators.
func NewConverter(h Host, run CommandOutput) *Converter {
	c := &Converter{}
	if !h.Windowsish() {
		return c
	}
	switch h.Flavor {
	case FlavorMSYS, FlavorMinGW:
		c.chain = append(c.chain, driveLetterPath)
	case FlavorCygwin:
		c.chain = append(c.chain, cygpathTool(run), cygdrivePath)
	}
	return c
}

// Convert rewrites path for the ffmpeg command line. Whatever scheme
// applies, the result never contains backslashes.
func (c *Converter) Convert(path string) string {
	for _, s := range c.chain {
		if out, ok := s(path); ok {
			path = out
			break
		}
	}
	return strings.ReplaceAll(path, `\`, "/")
}

// ArgPath renders path for embedding inside a filter argument. Filter
// strings treat ':' as an option separator, so a short relative path is
// preferred over an absolute one carrying a drive colon. Paths that climb
// more than two directories up fall back to the converted absolute form.
func (c *Converter) ArgPath(path string) string {
	path = strings.Trim(path, `"`)
	abs, err := filepath.Abs(path)
	if err != nil {
		return c.Convert(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return c.Convert(abs)
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || !shortClimb(rel) {
		return c.Convert(abs)
	}
	return strings.ReplaceAll(rel, `\`, "/")
}

func shortClimb(rel string) bool {
	if !strings.HasPrefix(rel, "..") {
		return true
	}
	return strings.Count(rel, ".."+string(filepath.Separator)) <= 2
}

// driveLetterPath maps MSYS-style /c/dir paths to C:/dir.
func driveLetterPath(path string) (string, bool) {
	m := driveLetterRe.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + ":/" + m[2], true
}

// cygdrivePath maps /cygdrive/c/dir paths to C:/dir.
func cygdrivePath(path string) (string, bool) {
	m := cygdriveRe.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + ":/" + m[2], true
}

// cygpathTool asks the cygpath utility for the mixed-mode form. Cygwin
// mounts can remap directories in ways the /cygdrive pattern cannot see,
// so the tool runs first when present.
func cygpathTool(run CommandOutput) strategy {
	return func(path string) (string, bool) {
		if run == nil {
			return "", false
		}
		out, err := run("cygpath", "-m", path)
		if err != nil || out == "" {
			return "", false
		}
		return out, true
	}
}
