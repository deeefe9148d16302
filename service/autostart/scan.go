package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/autostart/base/log"
	"github.com/safing/autostart/base/utils"
)

const fileSuffix = ".desktop"

// File is an autostart file found in one of the autostart directories.
type File struct {
	// Name is the file name, which identifies the entry across directories.
	Name string
	// Path is the full path of the file.
	Path string
}

// ListFiles returns the autostart files of dirs, in order. Within a directory
// files are sorted by name. A name already found in an earlier directory is
// skipped, so user entries shadow system entries with the same name.
// Missing directories are skipped silently; other errors are returned
// together with the files that could be listed.
func ListFiles(dirs []string) ([]File, error) {
	var (
		files []File
		errs  *multierror.Error
		seen  = make(map[string]struct{})
	)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("autostart: %s does not exist, skipping", dir)
				continue
			}
			errs = multierror.Append(errs, fmt.Errorf("failed to read directory %s: %w", dir, err))
			continue
		}

		log.Tracef("autostart: scanning %s", dir)
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, fileSuffix) {
				log.Tracef("autostart: %s: not named *%s, ignoring", name, fileSuffix)
				continue
			}

			path := filepath.Join(dir, name)
			// symlinks to files are fine
			if !entry.Type().IsRegular() && !(entry.Type()&fs.ModeSymlink != 0 && utils.IsRegularFile(path)) {
				log.Tracef("autostart: %s: not a file, ignoring", path)
				continue
			}

			if _, ok := seen[name]; ok {
				log.Debugf("autostart: %s: name already processed, ignoring", path)
				continue
			}
			seen[name] = struct{}{}

			files = append(files, File{Name: name, Path: path})
		}
	}

	return files, errs.ErrorOrNil()
}
