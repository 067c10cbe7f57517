package ephem

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/vsop87"
)

type fakeS3 struct {
	downloads []string
	failOn    string
}

func (f *fakeS3) GetFile(_ context.Context, path string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeS3) ListFiles(_ context.Context, prefix string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeS3) DownloadToFile(_ context.Context, path string, dest string) error {
	if f.failOn != "" && filepath.Base(path) == f.failOn {
		return errors.New("connection reset")
	}
	f.downloads = append(f.downloads, path)
	return os.WriteFile(dest, []byte("stub"), 0o644)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHydrateDataDownloadsMissing(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "vsop87")
	cfg := &Config{DataDir: dataDir, S3Prefix: "ephemeris/vsop87"}
	s3 := &fakeS3{}

	err := HydrateData(context.Background(), s3, cfg, discardLogger())
	require.NoError(t, err)

	files := vsop87.DataFiles()
	require.Len(t, s3.downloads, len(files))
	for _, name := range files {
		require.Contains(t, s3.downloads, "ephemeris/vsop87/"+name)
		_, statErr := os.Stat(filepath.Join(dataDir, name))
		require.NoError(t, statErr)
	}
	require.NoError(t, vsop87.CheckData(dataDir))
}

func TestHydrateDataSkipsPresentFiles(t *testing.T) {
	dataDir := t.TempDir()
	files := vsop87.DataFiles()
	for _, name := range files[:2] {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte("stub"), 0o644))
	}
	cfg := &Config{DataDir: dataDir, S3Prefix: "vsop87"}
	s3 := &fakeS3{}

	err := HydrateData(context.Background(), s3, cfg, discardLogger())
	require.NoError(t, err)
	require.Len(t, s3.downloads, len(files)-2)
	for _, got := range s3.downloads {
		require.NotContains(t, []string{"vsop87/" + files[0], "vsop87/" + files[1]}, got)
	}
}

func TestHydrateDataCompleteSetNoS3Calls(t *testing.T) {
	dataDir := t.TempDir()
	for _, name := range vsop87.DataFiles() {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte("stub"), 0o644))
	}
	cfg := &Config{DataDir: dataDir, S3Prefix: "vsop87"}
	s3 := &fakeS3{}

	err := HydrateData(context.Background(), s3, cfg, discardLogger())
	require.NoError(t, err)
	require.Empty(t, s3.downloads)
}

func TestHydrateDataDownloadError(t *testing.T) {
	files := vsop87.DataFiles()
	cfg := &Config{DataDir: t.TempDir(), S3Prefix: "vsop87"}
	s3 := &fakeS3{failOn: files[0]}

	err := HydrateData(context.Background(), s3, cfg, discardLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), files[0])
}
