package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"log/slog"

	"github.com/admin/tg-bots/jyotish-engine/internal/ports/storage"
)

// Client обёртка над minio.Client для доставки файлов эфемерид
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient создаёт новый S3 клиент
func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.IS3Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// GetFile получает файл по пути
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}

	return data, nil
}

// ListFiles получает список файлов по префиксу
func (c *Client) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string

	objectCh := c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects with prefix %s: %w", prefix, object.Err)
		}

		// пропускаем каталоги
		if object.Key[len(object.Key)-1] != '/' {
			files = append(files, object.Key)
		}
	}

	return files, nil
}

// DownloadToFile скачивает объект на локальный диск; файл заменяется
// атомарно средствами minio (скачивание во временный файл с переносом)
func (c *Client) DownloadToFile(ctx context.Context, path string, dest string) error {
	if err := c.client.FGetObject(ctx, c.bucket, path, dest, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download object %s to %s: %w", path, dest, err)
	}

	c.log.Info("object downloaded", "path", path, "dest", dest)

	return nil
}
