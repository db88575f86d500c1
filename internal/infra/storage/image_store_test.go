//go:build unit

package storage_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotel-booking-api/internal/infra/storage"
	"hotel-booking-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, maxSize int64) *storage.LocalImageStore {
	t.Helper()

	store, err := storage.NewLocalImageStore(config.UploadConfig{
		Dir:         t.TempDir(),
		MaxSizeByte: maxSize,
	})
	require.NoError(t, err)
	return store
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestLocalImageStore_Save(t *testing.T) {
	t.Run("画像が保存され公開パスが返る", func(t *testing.T) {
		store := newStore(t, 1024)

		publicPath, err := store.Save(fileHeader(t, "photo.jpg", []byte("fake-jpeg")))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
		assert.True(t, strings.HasSuffix(publicPath, ".jpg"))

		onDisk := filepath.Join(store.Root(), strings.TrimPrefix(publicPath, "/uploads/"))
		data, err := os.ReadFile(onDisk)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-jpeg"), data)
	})

	t.Run("拡張子は小文字に正規化される", func(t *testing.T) {
		store := newStore(t, 1024)

		publicPath, err := store.Save(fileHeader(t, "PHOTO.PNG", []byte("fake-png")))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(publicPath, ".png"))
	})

	t.Run("許可されていない拡張子は拒否される", func(t *testing.T) {
		store := newStore(t, 1024)

		_, err := store.Save(fileHeader(t, "script.sh", []byte("#!/bin/sh")))
		assert.ErrorIs(t, err, storage.ErrUnsupportedFormat)
	})

	t.Run("サイズ上限を超えるファイルは拒否される", func(t *testing.T) {
		store := newStore(t, 4)

		_, err := store.Save(fileHeader(t, "big.jpg", []byte("more than four bytes")))
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	})
}

func TestLocalImageStore_Remove(t *testing.T) {
	t.Run("保存済みの画像を削除できる", func(t *testing.T) {
		store := newStore(t, 1024)

		publicPath, err := store.Save(fileHeader(t, "photo.jpg", []byte("fake-jpeg")))
		require.NoError(t, err)

		require.NoError(t, store.Remove(publicPath))

		onDisk := filepath.Join(store.Root(), strings.TrimPrefix(publicPath, "/uploads/"))
		_, err = os.Stat(onDisk)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("存在しないファイルの削除は成功扱い", func(t *testing.T) {
		store := newStore(t, 1024)

		assert.NoError(t, store.Remove("/uploads/gone.jpg"))
	})

	t.Run("アップロードルート外のパスは拒否される", func(t *testing.T) {
		store := newStore(t, 1024)

		cases := []string{
			"/etc/passwd",
			"/uploads/../secrets.txt",
			"/uploads/../../etc/passwd",
			"/uploads",
			"",
		}
		for _, publicPath := range cases {
			err := store.Remove(publicPath)
			assert.ErrorIs(t, err, storage.ErrOutsideUploadsRoot, "path %q", publicPath)
		}
	})
}
