package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nousrire/backend/internal/domain"
	internal_errors "github.com/nousrire/backend/internal/errors"
)

// MockImageStore mocks the ImageStore interface.
type MockImageStore struct {
	saveFunc   func(fileData io.Reader, relativePath string) (string, error)
	deleteFunc func(url string) error

	savedPaths []string
	savedData  [][]byte
}

func (m *MockImageStore) Save(fileData io.Reader, relativePath string) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(fileData, relativePath)
	}
	data, err := io.ReadAll(fileData)
	if err != nil {
		return "", err
	}
	m.savedPaths = append(m.savedPaths, relativePath)
	m.savedData = append(m.savedData, data)
	return "http://localhost:8080/media/" + relativePath, nil
}

func (m *MockImageStore) Delete(url string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(url)
	}
	return nil
}

func encodePng(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJpeg(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func pendingFrom(data []byte, filename, mimeType string) *domain.PendingImage {
	return &domain.PendingImage{
		Filename:  filename,
		MimeType:  mimeType,
		SizeBytes: int64(len(data)),
		Data:      bytes.NewReader(data),
	}
}

func TestImagePipelineStoresUnderNamespacedPath(t *testing.T) {
	store := &MockImageStore{}
	pipeline := NewImagePipeline(store)

	stored, err := pipeline.Process(pendingFrom(encodePng(t, 100, 50), "photo.png", "image/png"))

	require.NoError(t, err)
	require.Len(t, store.savedPaths, 1)
	assert.True(t, strings.HasPrefix(store.savedPaths[0], "news-images/"))
	assert.True(t, strings.HasSuffix(store.savedPaths[0], ".png"), "png stays png")
	assert.Contains(t, stored.URL, "news-images/")
	assert.Equal(t, "image/png", stored.MimeType)
}

func TestImagePipelineScalesDownLargeImages(t *testing.T) {
	store := &MockImageStore{}
	pipeline := NewImagePipeline(store)

	_, err := pipeline.Process(pendingFrom(encodeJpeg(t, 4000, 2000), "wide.jpg", "image/jpeg"))
	require.NoError(t, err)

	require.Len(t, store.savedData, 1)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(store.savedData[0]))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1920, cfg.Width, "longer edge capped at 1920")
	assert.Equal(t, 960, cfg.Height, "aspect ratio preserved")
}

func TestImagePipelineKeepsSmallImagesUntouchedInSize(t *testing.T) {
	store := &MockImageStore{}
	pipeline := NewImagePipeline(store)

	_, err := pipeline.Process(pendingFrom(encodeJpeg(t, 640, 480), "small.jpg", "image/jpeg"))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(store.savedData[0]))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}

func TestImagePipelineRejectsUndecodableData(t *testing.T) {
	pipeline := NewImagePipeline(&MockImageStore{})

	_, err := pipeline.Process(pendingFrom([]byte("this is not an image"), "fake.jpg", "image/jpeg"))

	assert.True(t, internal_errors.Is[*internal_errors.InvalidFormatError](err))
}

func TestImagePipelineUniqueNames(t *testing.T) {
	store := &MockImageStore{}
	pipeline := NewImagePipeline(store)

	data := encodePng(t, 10, 10)
	_, err := pipeline.Process(pendingFrom(data, "same.png", "image/png"))
	require.NoError(t, err)
	_, err = pipeline.Process(pendingFrom(data, "same.png", "image/png"))
	require.NoError(t, err)

	require.Len(t, store.savedPaths, 2)
	assert.NotEqual(t, store.savedPaths[0], store.savedPaths[1])
}
