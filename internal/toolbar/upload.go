package toolbar

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/example/thumbforge/internal/canvas"
)

// Decode reads any registered raster format.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("decode image: empty %s", format)
	}
	return img, nil
}

// Upload decodes r in the background and inserts the result through d.
// It returns false without reading r when another upload is pending.
// done, when non-nil, is called on the loop once the upload settles.
func (t *Toolbar) Upload(r io.Reader, d Dispatcher, done func(*canvas.Image, error)) bool {
	if !t.uploading.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		img, err := Decode(r)
		if c, ok := r.(io.Closer); ok {
			c.Close()
		}
		d.Post(func() {
			defer t.uploading.Store(false)
			if err != nil {
				log.Printf("upload: %v", err)
				if done != nil {
					done(nil, err)
				}
				return
			}
			obj := t.InsertImage(img)
			if done != nil {
				done(obj, nil)
			}
		})
	}()
	return true
}
