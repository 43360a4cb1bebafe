package avatar

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-accounts/internal/domain/account"
)

const (
	MaxUploadBytes = 5 << 20
	MaxSide        = 512
	ContentType    = "image/webp"
	quality        = 80

	// Decoded size is bounded by the declared header, not the upload size.
	MaxSourceSide   = 8192
	MaxSourcePixels = 40_000_000
)

// Process decodes a JPEG, PNG or WebP image, shrinks it to fit MaxSide and
// re-encodes it as lossy WebP. The webp package registers its own decoder.
// Images whose header declares more than MaxSourceSide per side or
// MaxSourcePixels in total are rejected before any pixel is decoded.
func Process(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", account.ErrInvalidImage, MaxUploadBytes)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", account.ErrInvalidImage, err)
	}
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", account.ErrInvalidImage, err)
	}

	img := fit(src, MaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxSourceSide || h > MaxSourceSide || int64(w)*int64(h) > MaxSourcePixels {
		return fmt.Errorf("%w: %dx%d exceeds limits", account.ErrInvalidImage, w, h)
	}
	return nil
}

func fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}

	if w >= h {
		h = h * side / w
		w = side
	} else {
		w = w * side / h
		h = side
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Key is the object key of an account's avatar.
func Key(accountID string) string {
	return "avatars/" + accountID + ".webp"
}
