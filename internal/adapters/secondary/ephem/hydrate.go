package ephem

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/vsop87"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/storage"
)

// HydrateData докачивает недостающие файлы VSOP87B из S3 на локальный
// диск перед инициализацией провайдера. Уже лежащие на диске файлы не
// перекачиваются, полный комплект — ранний выход без обращений к S3.
// Ошибка скачивания не фатальна для процесса: в режиме auto фабрика
// откатится к аналитическим эфемеридам.
func HydrateData(ctx context.Context, s3Client storage.IS3Client, cfg *Config, log *slog.Logger) error {
	if err := vsop87.CheckData(cfg.DataDir); err == nil {
		log.Debug("vsop87 data already present", "data_dir", cfg.DataDir)
		return nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", cfg.DataDir, err)
	}

	for _, name := range vsop87.DataFiles() {
		dest := filepath.Join(cfg.DataDir, name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}

		src := path.Join(cfg.S3Prefix, name)
		if err := s3Client.DownloadToFile(ctx, src, dest); err != nil {
			return fmt.Errorf("failed to hydrate %s: %w", name, err)
		}
	}

	log.Info("vsop87 data hydrated from object storage",
		"data_dir", cfg.DataDir,
		"files", len(vsop87.DataFiles()),
	)
	return nil
}
