package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/spritesqueeze/internal/packer"
	"github.com/woozymasta/spritesqueeze/internal/rimage"
)

// scannedSprite is the phase-2 output for one input: a tight trimmed size
// and the offsets needed to reposition it in its original coordinate
// frame downstream.
type scannedSprite struct {
	shortName   string
	sourcePath  string
	trimmedSize packer.Size
	trim        TrimInfo
}

// scanAndTrim enumerates dir (skipping dotfiles and non-PNG entries, in
// sorted-name order so the pipeline's input order is deterministic), then
// alpha-trims each sprite to record its packable size.
func scanAndTrim(dir string, opts Options) ([]scannedSprite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read directory %q: %v", ErrScan, dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".png" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no sprite files found in %q", ErrScan, dir)
	}

	sprites := make([]scannedSprite, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		opts.logf("scanning sprite %s", path)

		img, err := rimage.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScan, err)
		}
		origW, origH := img.Width(), img.Height()

		left, top, hadOpaque := img.Trim()
		if !hadOpaque {
			return nil, fmt.Errorf("%w: sprite %q is fully transparent", ErrScan, path)
		}

		sprites = append(sprites, scannedSprite{
			shortName:   strings.TrimSuffix(name, filepath.Ext(name)),
			sourcePath:  path,
			trimmedSize: packer.Size{W: img.Width(), H: img.Height()},
			trim: TrimInfo{
				OffsetLeft:   left,
				OffsetTop:    top,
				OriginWidth:  origW,
				OriginHeight: origH,
			},
		})
	}

	return sprites, nil
}
