package posts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/gorewood/issueposts/internal/issues"
	"github.com/gorewood/issueposts/internal/output"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Post is a rendered issue ready to be written.
type Post struct {
	Number  int64  `json:"number,omitempty"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// Filename returns the post filename for an issue.
func Filename(issue issues.Issue) string {
	date := issue.UpdatedAt()
	if runes := []rune(date); len(runes) > 10 {
		date = string(runes[:10])
	}
	return date + "-" + issue.Title() + ".md"
}

// Path returns the post path for an issue under dir.
func Path(dir string, issue issues.Issue) string {
	return filepath.Join(dir, Filename(issue))
}

// EnsureDir creates dir if it does not exist. Only the last path element is
// created; missing parents are an error.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return output.NewFilesystemError(fmt.Sprintf("output path %s is not a directory", dir), nil)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return output.NewFilesystemError("checking output directory "+dir, err)
	}
	if err := os.Mkdir(dir, dirPerms); err != nil {
		return output.NewFilesystemError("creating output directory "+dir, err)
	}
	return nil
}

// Write stores content at path, replacing any existing file.
func Write(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return output.NewFilesystemError("writing post "+path, err)
	}

	// atomic.WriteFile creates the file with temp-file permissions
	if err := os.Chmod(path, filePerms); err != nil {
		return output.NewFilesystemError("setting permissions on "+path, err)
	}
	return nil
}
