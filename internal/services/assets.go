package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type AssetStore interface {
	Save(ctx context.Context, kind string, name string, data io.Reader) (string, error)
}

// DiskAssets - хранение загруженных файлов на диске.
// Ссылка вида logo-<uuid>-<имя файла> непрозрачна для остального кода.
type DiskAssets struct {
	Dir string
}

// Создание сервиса
func NewDiskAssets(dir string) *DiskAssets {
	return &DiskAssets{Dir: dir}
}

func (s *DiskAssets) Save(ctx context.Context, kind string, name string, data io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ref := fmt.Sprintf("%s-%s-%s", kind, uuid.NewString(), filepath.Base(name))
	file, err := os.Create(filepath.Join(s.Dir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		return "", fmt.Errorf("failed to write asset file: %w", err)
	}
	return ref, nil
}
