package service

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
)

// ImageStore is the object-storage collaborator: save bytes under a
// namespaced path, get back a durable URL, delete by that URL.
type ImageStore interface {
	Save(fileData io.Reader, relativePath string) (string, error)
	Delete(url string) error
}

const (
	maxImageDimension = 1920    // longer edge after compression
	targetImageBytes  = 1 << 20 // compression target, not a hard cap

	// Guard against crafted headers claiming huge dimensions: a 65535x65535
	// claim would make image.Decode allocate ~16GB.
	maxDecodedBytes = 256 << 20

	imagePathPrefix = "news-images"
)

// ImagePipeline compresses validated uploads and stores them.
type ImagePipeline struct {
	store ImageStore
}

func NewImagePipeline(store ImageStore) *ImagePipeline {
	return &ImagePipeline{store: store}
}

// Process decodes, scales down to the dimension limit, re-encodes toward
// the size target and uploads the result. Returns the stored image with
// its durable URL. Failures are typed; the news create path treats them
// as non-fatal.
func (p *ImagePipeline) Process(pending *domain.PendingImage) (*domain.StoredImage, error) {
	data, err := io.ReadAll(io.LimitReader(pending.Data, int64(maxDecodedBytes)))
	if err != nil {
		return nil, &errors.StorageError{Op: "read upload", Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.InvalidFormatError{MimeType: pending.MimeType}
	}
	if int64(cfg.Width)*int64(cfg.Height)*4 > maxDecodedBytes {
		return nil, &errors.FileTooLargeError{
			SizeBytes: int64(cfg.Width) * int64(cfg.Height) * 4,
			MaxBytes:  maxDecodedBytes,
		}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.InvalidFormatError{MimeType: pending.MimeType}
	}

	img = scaleDown(img, maxImageDimension)

	encoded, mimeType, ext, err := encode(img, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode compressed image: %w", err)
	}

	name := uuid.NewString() + ext
	url, err := p.store.Save(bytes.NewReader(encoded), path.Join(imagePathPrefix, name))
	if err != nil {
		return nil, &errors.StorageError{Op: "upload image", Err: err}
	}

	return &domain.StoredImage{
		URL:       url,
		MimeType:  mimeType,
		SizeBytes: int64(len(encoded)),
	}, nil
}

// DeleteStored removes a stored image by URL.
func (p *ImagePipeline) DeleteStored(url string) error {
	return p.store.Delete(url)
}

// scaleDown resizes so the longer edge is at most maxDim, preserving
// aspect ratio. Images already within bounds pass through untouched.
func scaleDown(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var newW, newH int
	if w >= h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// encode re-encodes preserving the original format where Go can write it.
// webp has no encoder in the ecosystem's x/image, so webp uploads come
// back out as jpeg.
func encode(img image.Image, format string) ([]byte, string, string, error) {
	switch format {
	case "png":
		var buf bytes.Buffer
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), "image/png", ".png", nil
	case "gif":
		var buf bytes.Buffer
		if err := gif.Encode(&buf, img, &gif.Options{NumColors: 256}); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), "image/gif", ".gif", nil
	default: // jpeg, webp
		data, err := encodeJpegWithinTarget(img)
		if err != nil {
			return nil, "", "", err
		}
		return data, "image/jpeg", ".jpg", nil
	}
}

// encodeJpegWithinTarget steps quality down until the output fits the
// size target. The last attempt is returned even if still above target:
// the 1 MiB figure is a goal, not an invariant.
func encodeJpegWithinTarget(img image.Image) ([]byte, error) {
	var last []byte
	for _, quality := range []int{85, 70, 55, 40} {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		last = buf.Bytes()
		if len(last) <= targetImageBytes {
			return last, nil
		}
	}
	return last, nil
}
