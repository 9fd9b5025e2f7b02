package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func jpegFile(name string, size int) UploadedFile {
	return UploadedFile{Name: name, ContentType: "image/jpeg", Data: bytes.Repeat([]byte{0xAB}, size)}
}

// --------------------- AddFiles ---------------------
func TestAddFiles_AppendsInOrder(t *testing.T) {
	var set AttachmentSet

	err := set.AddFiles([]UploadedFile{jpegFile("a.jpg", 10), jpegFile("b.jpg", 10)})
	assert.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	items := set.Items()
	assert.Equal(t, "a.jpg", items[0].Filename)
	assert.Equal(t, "b.jpg", items[1].Filename)
}

func TestAddFiles_CountLimitAcrossBatches(t *testing.T) {
	var set AttachmentSet

	first := []UploadedFile{jpegFile("1.jpg", 1), jpegFile("2.jpg", 1), jpegFile("3.jpg", 1), jpegFile("4.jpg", 1)}
	assert.NoError(t, set.AddFiles(first))

	err := set.AddFiles([]UploadedFile{jpegFile("5.jpg", 1), jpegFile("6.jpg", 1)})
	assert.ErrorIs(t, err, ErrTooManyAttachments)
	assert.Equal(t, 4, set.Len())

	assert.NoError(t, set.AddFiles([]UploadedFile{jpegFile("5.jpg", 1)}))
	assert.Equal(t, MaxAttachments, set.Len())
}

func TestAddFiles_BatchRejectedAsAWhole(t *testing.T) {
	var set AttachmentSet

	batch := []UploadedFile{
		jpegFile("ok.jpg", 10),
		{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")},
	}
	err := set.AddFiles(batch)
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
	// the valid file in the batch must not slip in
	assert.Equal(t, 0, set.Len())
}

func TestAddFiles_OversizedRejectsBatch(t *testing.T) {
	var set AttachmentSet

	batch := []UploadedFile{
		jpegFile("small.jpg", 10),
		jpegFile("big.jpg", MaxAttachmentSize+1),
	}
	err := set.AddFiles(batch)
	assert.ErrorIs(t, err, ErrAttachmentTooLarge)
	assert.Equal(t, 0, set.Len())
}

func TestAddFiles_PreviewOrderMatchesFileOrder(t *testing.T) {
	var set AttachmentSet

	files := []UploadedFile{
		{Name: "one.png", ContentType: "image/png", Data: []byte("one")},
		{Name: "two.png", ContentType: "image/png", Data: []byte("two")},
		{Name: "three.png", ContentType: "image/png", Data: []byte("three")},
	}
	assert.NoError(t, set.AddFiles(files))

	for i, item := range set.Items() {
		assert.Equal(t, files[i].Name, item.Filename)
		assert.True(t, strings.HasPrefix(item.PreviewDataURI, "data:image/png;base64,"), item.PreviewDataURI)
	}
}

// --------------------- RemoveAt ---------------------
func TestRemoveAt_PreservesRelativeOrder(t *testing.T) {
	var set AttachmentSet
	assert.NoError(t, set.AddFiles([]UploadedFile{jpegFile("a.jpg", 1), jpegFile("b.jpg", 1), jpegFile("c.jpg", 1)}))

	assert.NoError(t, set.RemoveAt(1))

	items := set.Items()
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "a.jpg", items[0].Filename)
	assert.Equal(t, "c.jpg", items[1].Filename)
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	var set AttachmentSet
	assert.Error(t, set.RemoveAt(0))
	assert.Error(t, set.RemoveAt(-1))
}

func TestRemoveAt_FreesASlot(t *testing.T) {
	var set AttachmentSet
	assert.NoError(t, set.AddFiles([]UploadedFile{
		jpegFile("1.jpg", 1), jpegFile("2.jpg", 1), jpegFile("3.jpg", 1), jpegFile("4.jpg", 1), jpegFile("5.jpg", 1),
	}))
	assert.ErrorIs(t, set.AddFiles([]UploadedFile{jpegFile("6.jpg", 1)}), ErrTooManyAttachments)

	assert.NoError(t, set.RemoveAt(0))
	assert.NoError(t, set.AddFiles([]UploadedFile{jpegFile("6.jpg", 1)}))
	assert.Equal(t, MaxAttachments, set.Len())
}
