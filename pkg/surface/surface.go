// Package surface serializes rendered canvases to image files. It is the
// collaborator on the far side of the core's draw-operation contract: the
// core never knows which file format, if any, a canvas ends up in.
package surface

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/max99x/drawtime/pkg/render"
)

// Writer serializes a canvas to one image format
type Writer interface {
	Write(w io.Writer, c *render.Canvas) error
}

// WriteFile saves a canvas to the given path, picking the format from the
// file extension (.png or .svg). An existing file is silently
// overwritten.
func WriteFile(path string, c *render.Canvas) error {
	var writer Writer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		writer = &PNGWriter{}
	case ".svg":
		writer = &SVGWriter{}
	default:
		return errors.Errorf("unsupported output format %q; use .png or .svg", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := writer.Write(f, c); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
