package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
)

const publicPrefix = "/uploads"

var (
	ErrFileTooLarge       = errs.New("uploaded file exceeds the size limit")
	ErrUnsupportedFormat  = errs.New("only .jpg, .jpeg, .png allowed")
	ErrOutsideUploadsRoot = errs.New("path is outside the uploads directory")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// LocalImageStore keeps hotel images on the local filesystem under a single
// uploads root and hands out the public /uploads/... path stored in the DB.
type LocalImageStore struct {
	root    string
	maxSize int64
}

func NewLocalImageStore(cfg config.UploadConfig) (*LocalImageStore, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve uploads directory")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create uploads directory")
	}

	return &LocalImageStore{
		root:    root,
		maxSize: cfg.MaxSizeByte,
	}, nil
}

func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedFormat
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)

	src, err := file.Open()
	if err != nil {
		return "", errs.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", errs.Wrap(err, "failed to create image file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errs.Wrap(err, "failed to write image file")
	}

	return path.Join(publicPrefix, name), nil
}

// Remove unlinks a previously saved image. The stored path is normalized and
// must resolve inside the uploads root; anything else is rejected so a
// poisoned image_url cannot delete arbitrary files.
func (s *LocalImageStore) Remove(publicPath string) error {
	rel, err := s.relativize(publicPath)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, rel)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errs.Wrap(err, "failed to remove image file")
	}

	return nil
}

// Root returns the absolute uploads directory, served statically by the router.
func (s *LocalImageStore) Root() string {
	return s.root
}

func (s *LocalImageStore) relativize(publicPath string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimPrefix(publicPath, "/"))
	if cleaned == publicPrefix || !strings.HasPrefix(cleaned, publicPrefix+"/") {
		return "", ErrOutsideUploadsRoot
	}

	rel := strings.TrimPrefix(cleaned, publicPrefix+"/")
	if rel == "" || strings.Contains(rel, "..") {
		return "", ErrOutsideUploadsRoot
	}

	return filepath.FromSlash(rel), nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%08d", time.Now().UnixNano()%100000000)
	}
	return hex.EncodeToString(b)
}
