package staging

import (
	"io"
	"os"
	"path/filepath"

	"fpt/internal/domain"
	"fpt/internal/suite"
)

// Stager copies plugin libraries and their shared dependencies next to the
// ffmpeg binary. Filter arguments reference plugins by bare file name, so
// ffmpeg resolves them relative to its own directory; on Windows the
// dependency DLLs must sit there too.
type Stager struct {
	pluginDir string
}

// NewStager creates a new Stager reading artifacts from pluginDir
func NewStager(pluginDir string) *Stager {
	return &Stager{pluginDir: pluginDir}
}

// Stage copies the suite's dependencies and plugin artifacts into the
// directory holding the ffmpeg binary. Staging is best effort: missing
// source files are skipped and copy failures become warnings. When the
// binary is a bare PATH lookup or its directory does not exist, nothing
// is staged and the report stays empty.
func (s *Stager) Stage(ffmpegBin string, st *suite.Suite, ext string) domain.StagingReport {
	if filepath.Base(ffmpegBin) == ffmpegBin {
		return domain.StagingReport{}
	}
	dir := filepath.Dir(ffmpegBin)
	if !isDir(dir) {
		return domain.StagingReport{}
	}

	report := domain.StagingReport{Dir: dir}

	names := make([]string, 0, len(st.Dependencies)+len(st.Cases))
	names = append(names, st.Dependencies...)
	for _, c := range st.Cases {
		names = append(names, c.ArtifactFile(ext))
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		src := filepath.Join(s.pluginDir, name)
		if !isFile(src) {
			continue
		}
		if err := copyFile(src, filepath.Join(dir, name)); err != nil {
			report.Warnings = append(report.Warnings, domain.StagingWarning{Name: name, Reason: err.Error()})
			continue
		}
		report.Copied = append(report.Copied, name)
	}

	return report
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
