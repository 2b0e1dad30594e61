// Package picker abstracts the external image-selection collaborator. On the
// phone this is the gallery; here the directory picker is its host-side
// analog, returning file URIs from a folder of images.
package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

// Picker selects images for a trip. Implementations return opaque URI
// strings. A zero-length result means nothing was chosen this call, which is
// legal; domain.ErrPickerCancelled means the user backed out of the dialog.
type Picker interface {
	Pick(limit int) ([]string, error)
}

// Func adapts a function to the Picker interface.
type Func func(limit int) ([]string, error)

// Pick calls f.
func (f Func) Pick(limit int) ([]string, error) { return f(limit) }

// imageExts are the file extensions the directory picker treats as images.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Dir picks images from a filesystem directory: every image file in the
// directory, sorted by name, up to the requested limit.
type Dir struct {
	Path string
}

// NewDir returns a Dir picker rooted at path.
func NewDir(path string) Dir {
	return Dir{Path: path}
}

// Pick lists image files under the directory as file:// URIs. limit <= 0
// means no limit. A missing directory is a picker failure; an empty
// directory is a legal zero-length selection.
func (d Dir) Pick(limit int) ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("picker.Dir.Pick: %w", err)
	}

	uris := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExts[ext] {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(d.Path, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("picker.Dir.Pick: %w", err)
		}
		uris = append(uris, "file://"+abs)
	}
	sort.Strings(uris)

	if limit > 0 && len(uris) > limit {
		uris = uris[:limit]
	}
	return uris, nil
}

// Cancelled returns a Picker that always reports user cancellation. Used in
// tests and as the fallback when no image source is configured.
func Cancelled() Picker {
	return Func(func(int) ([]string, error) {
		return nil, domain.ErrPickerCancelled
	})
}

var _ Picker = Dir{}
