package storage

import "context"

// IS3Client интерфейс для работы с S3-совместимым хранилищем (MinIO);
// используется для доставки файлов эфемерид VSOP87 на локальный диск
type IS3Client interface {
	GetFile(ctx context.Context, path string) ([]byte, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	DownloadToFile(ctx context.Context, path string, dest string) error
}
