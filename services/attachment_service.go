package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
)

const (
	MaxAttachments    = 5
	MaxAttachmentSize = 5 << 20 // 5 MiB per image
)

var (
	ErrTooManyAttachments   = errors.New("at most 5 images can be uploaded")
	ErrUnsupportedImageType = errors.New("only JPG, PNG and WEBP images are allowed")
	ErrAttachmentTooLarge   = errors.New("images must not exceed 5MB")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadedFile is a file received from a multipart form, fully read.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PendingAttachment is a validated file queued for upload, with its preview.
type PendingAttachment struct {
	Filename       string
	ContentType    string
	Data           []byte
	PreviewDataURI string
}

// AttachmentSet is the ordered collection of images selected in the wizard's
// media step. It lives for the duration of one submission and is never
// persisted.
type AttachmentSet struct {
	items []PendingAttachment
}

// AddFiles validates the whole batch before accepting any of it: exceeding
// the count limit, an unsupported type, or an oversized file rejects every
// file in the batch. On success all files are appended in order and previews
// are generated synchronously, so preview order always matches file order.
func (s *AttachmentSet) AddFiles(files []UploadedFile) error {
	if len(s.items)+len(files) > MaxAttachments {
		return ErrTooManyAttachments
	}
	for _, f := range files {
		if !allowedImageTypes[detectContentType(f)] {
			return ErrUnsupportedImageType
		}
		if len(f.Data) > MaxAttachmentSize {
			return ErrAttachmentTooLarge
		}
	}

	for _, f := range files {
		contentType := detectContentType(f)
		s.items = append(s.items, PendingAttachment{
			Filename:       f.Name,
			ContentType:    contentType,
			Data:           f.Data,
			PreviewDataURI: previewDataURI(contentType, f.Data),
		})
	}
	return nil
}

// RemoveAt removes the attachment at the given position, preserving the
// relative order of the rest.
func (s *AttachmentSet) RemoveAt(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("attachment index %d out of range", index)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

func (s *AttachmentSet) Items() []PendingAttachment {
	return s.items
}

func (s *AttachmentSet) Len() int {
	return len(s.items)
}

func detectContentType(f UploadedFile) string {
	if f.ContentType != "" {
		return f.ContentType
	}
	return http.DetectContentType(f.Data)
}

func previewDataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
