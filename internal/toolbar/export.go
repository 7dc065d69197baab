package toolbar

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// FileName returns the export name for the given unix milliseconds.
func FileName(millis int64) string {
	return fmt.Sprintf("thumbnail-%d.png", millis)
}

// Export renders the surface and writes it as PNG.
func (t *Toolbar) Export(w io.Writer) error {
	if t.surface == nil {
		return ErrNoSurface
	}
	if err := png.Encode(w, t.surface.Render()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportFile writes a timestamped PNG into dir and returns its path.
func (t *Toolbar) ExportFile(dir string) (string, error) {
	if t.surface == nil {
		return "", ErrNoSurface
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(t.now().UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := t.Export(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// ExportPDF writes a single page PDF the size of the canvas holding the
// rendered PNG.
func (t *Toolbar) ExportPDF(w io.Writer) error {
	if t.surface == nil {
		return ErrNoSurface
	}
	var buf bytes.Buffer
	if err := t.Export(&buf); err != nil {
		return err
	}
	cw, ch := t.surface.Size()
	width, height := float64(cw), float64(ch)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("thumbnail", opts, &buf)
	p.ImageOptions("thumbnail", 0, 0, width, height, false, opts, 0, "")
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
