package validation

import (
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
)

// MaxUploadBytes is the pre-compression ceiling; the pipeline later
// compresses toward the 1 MiB target.
const MaxUploadBytes = 10 << 20

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImageUpload checks MIME type and raw size of an uploaded file
// and wraps it as a PendingImage for the pipeline. The returned reader is
// the opened multipart file; the caller owns closing it.
func ValidateImageUpload(fileHeader *multipart.FileHeader) (*domain.PendingImage, error) {
	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return nil, &errors.InvalidFormatError{MimeType: "unknown"}
	}

	if !allowedImageMimes[mimeType] {
		return nil, &errors.InvalidFormatError{MimeType: mimeType}
	}

	if fileHeader.Size > MaxUploadBytes {
		return nil, &errors.FileTooLargeError{SizeBytes: fileHeader.Size, MaxBytes: MaxUploadBytes}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, &errors.ErrorWithStatusCode{Message: "failed to open uploaded file", StatusCode: 400}
	}

	return &domain.PendingImage{
		Filename:  fileHeader.Filename,
		MimeType:  mimeType,
		SizeBytes: fileHeader.Size,
		Data:      file,
	}, nil
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", &errors.InvalidFormatError{MimeType: "unknown"}
	}

	return mimeType, nil
}
