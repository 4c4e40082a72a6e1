package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

const DefaultMaxDimension = 3840

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Info describes an inspected image upload.
type Info struct {
	ContentType string
	Width       int
	Height      int
}

// Inspector validates portfolio image uploads before they reach object
// storage: the payload must decode as a supported format and fit inside
// maxDimension on both axes. Oversized images are rejected rather than
// resized; the admin UI is expected to hand over web-ready assets.
type Inspector struct {
	maxDimension int
}

func NewInspector(maxDimension int) *Inspector {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Inspector{maxDimension: maxDimension}
}

func (i *Inspector) Inspect(data []byte, contentType, fileName string) (*Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}

	ct := normalizeContentType(contentType, fileName)
	if _, ok := allowedContentTypes[ct]; !ok {
		return nil, fmt.Errorf("media: unsupported content type %s", ct)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("media: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width > i.maxDimension || cfg.Height > i.maxDimension {
		return nil, fmt.Errorf("media: image %dx%d exceeds maximum dimension %d", cfg.Width, cfg.Height, i.maxDimension)
	}

	return &Info{ContentType: ct, Width: cfg.Width, Height: cfg.Height}, nil
}

func normalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	if ct != "" {
		return ct
	}
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName)))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.ToLower(mt)
		}
	}
	return "image/jpeg"
}
