package handlers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tenMB = 10 * 1024 * 1024

func fileHeader(size int64, mime string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "upload.bin",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{mime}},
	}
}

func TestValidateUploadedFileSizeBoundary(t *testing.T) {
	// Exactly the cap is accepted, one byte over is rejected.
	assert.NoError(t, validateUploadedFile(fileHeader(tenMB, "application/pdf"), tenMB))
	assert.Error(t, validateUploadedFile(fileHeader(tenMB+1, "application/pdf"), tenMB))
}

func TestValidateUploadedFileMimeAllowlist(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"image/jpeg",
		"image/png",
	}
	for _, mime := range allowed {
		assert.NoError(t, validateUploadedFile(fileHeader(1024, mime), tenMB), mime)
	}

	// Unsupported types are rejected regardless of size.
	assert.Error(t, validateUploadedFile(fileHeader(1, "application/zip"), tenMB))
	assert.Error(t, validateUploadedFile(fileHeader(1, "text/html"), tenMB))
	assert.Error(t, validateUploadedFile(fileHeader(1, ""), tenMB))
}
