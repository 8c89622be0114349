package builder

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"

	"deploykit/contentstream"
)

// Image is decoded, flattened pixel data ready for embedding as a
// DeviceRGB image XObject.
type Image struct {
	RGB    []byte
	Width  int
	Height int
}

// ImageCache loads icon bitmaps from a directory and flattens transparency
// onto the circle fill color. Entries are keyed by path and background so
// the same bitmap on two differently colored circles caches separately.
type ImageCache struct {
	dir string

	mu      sync.Mutex
	entries map[string]Image
}

func NewImageCache(dir string) *ImageCache {
	return &ImageCache{dir: dir, entries: make(map[string]Image)}
}

// Load returns the flattened RGB pixels for a relative image path.
func (c *ImageCache) Load(path string, bg contentstream.RGB) (Image, error) {
	key := fmt.Sprintf("%s:%.4f:%.4f:%.4f", path, bg.R, bg.G, bg.B)
	c.mu.Lock()
	img, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	f, err := os.Open(c.dir + "/" + path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", path, err)
	}

	img = Flatten(src, bg)
	c.mu.Lock()
	c.entries[key] = img
	c.mu.Unlock()
	return img, nil
}

// Flatten composites an image over an opaque background and returns raw
// 8-bit RGB rows. Transparent bitmaps end up on the circle color instead
// of black.
func Flatten(src image.Image, bg contentstream.RGB) Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	bgColor := color.RGBA{
		R: uint8(bg.R * 255),
		G: uint8(bg.G * 255),
		B: uint8(bg.B * 255),
		A: 255,
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Over)

	rgb := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride+w*4]
		for x := 0; x < w; x++ {
			rgb = append(rgb, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return Image{RGB: rgb, Width: w, Height: h}
}

// Downsample resizes an image so its longest side is at most maxDim,
// preserving aspect ratio. Images already within the limit are returned
// unchanged.
func Downsample(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return src
	}
	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
