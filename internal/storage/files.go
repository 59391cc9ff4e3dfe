package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 受け付けない拡張子
var ErrInvalidFileType = errors.New("invalid file type")

// FileStore は画像をローカルディスクに保存する。
// 保存名は uuid + 元の拡張子。
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save は拡張子を確認してから保存し、保存名を返す。
// .png / .jpg / .jpeg 以外は ErrInvalidFileType。
func (s *FileStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFileType, ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Open は保存済みファイルを読み出し用に開く。
func (s *FileStore) Open(name string) (io.ReadCloser, error) {
	// パス外参照を防ぐ
	base := filepath.Base(name)
	return os.Open(filepath.Join(s.dir, base))
}

// Remove は保存済みファイルを消す。無くてもエラーにしない。
func (s *FileStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
