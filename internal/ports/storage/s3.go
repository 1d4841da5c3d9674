package storage

import "context"

// IS3Client интерфейс для работы с S3-совместимым хранилищем (MinIO).
// Используется для загрузки расширенного датасета газетира при старте.
type IS3Client interface {
	GetFile(ctx context.Context, path string) ([]byte, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}
