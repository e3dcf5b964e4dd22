package coin

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/upload"
)

// newImageRequest builds a multipart form submission, with an image part when
// filename is set.
func newImageRequest(t *testing.T, filename string, content string) *http.Request {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	if filename != "" {
		part, err := form.CreateFormFile("image", filename)
		require.NoError(t, err)

		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/coins", body)
	request.Header.Set("Content-Type", form.FormDataContentType())

	return request
}

func TestSaveCoinImageLeavesReplacedFileOnDisk(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	previous, err := store.Save(strings.NewReader("old image"), "old.png")
	require.NoError(t, err)

	coin := model.Coin{Image: previous}
	recorder := httptest.NewRecorder()

	ok := saveCoinImage(store, recorder, newImageRequest(t, "new.jpg", "new image"), &coin)

	require.True(t, ok)
	assert.NotEqual(t, previous, coin.Image)
	assert.FileExists(t, filepath.Join(store.Dir(), coin.Image))

	// The database row still points at the old image until the caller
	// rewrites it, so the file must survive the save.
	assert.FileExists(t, filepath.Join(store.Dir(), previous))
}

func TestSaveCoinImageWithoutUploadKeepsImage(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	coin := model.Coin{Image: "existing.png"}
	recorder := httptest.NewRecorder()

	ok := saveCoinImage(store, recorder, newImageRequest(t, "", ""), &coin)

	require.True(t, ok)
	assert.Equal(t, "existing.png", coin.Image)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSaveCoinImageRejectsUnsupportedType(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	previous, err := store.Save(strings.NewReader("old image"), "old.png")
	require.NoError(t, err)

	coin := model.Coin{Image: previous}
	recorder := httptest.NewRecorder()

	ok := saveCoinImage(store, recorder, newImageRequest(t, "malware.exe", "content"), &coin)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, previous, coin.Image)
	assert.FileExists(t, filepath.Join(store.Dir(), previous))
}
