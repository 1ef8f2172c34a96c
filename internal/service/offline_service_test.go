package service

import (
	"context"
	"io"
	"testing"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingStorageProvider captures uploads in memory.
type recordingStorageProvider struct {
	uploads map[string]string
}

func newRecordingStorageProvider() *recordingStorageProvider {
	return &recordingStorageProvider{uploads: make(map[string]string)}
}

func (p *recordingStorageProvider) Upload(_ context.Context, filename string, reader io.Reader, _ int64, _ string) (string, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	p.uploads[filename] = string(body)
	return p.GetURL(filename), nil
}

func (p *recordingStorageProvider) Delete(_ context.Context, filename string) error {
	delete(p.uploads, filename)
	return nil
}

func (p *recordingStorageProvider) GetURL(filename string) string {
	return "/test/" + filename
}

func newOfflineService(db *gorm.DB, provider StorageProvider) *OfflineService {
	return NewOfflineService(
		repository.NewOfflineRepository(db),
		repository.NewContentRepository(db),
		&StorageService{Provider: provider},
	)
}

func TestPackageContent(t *testing.T) {
	db := setupTestDB(t)
	provider := newRecordingStorageProvider()
	svc := newOfflineService(db, provider)

	content := createContent(t, db, "Fractions", "mathematics", 2, model.English)

	item, err := svc.Package(context.Background(), content.ID)
	require.NoError(t, err)

	assert.Equal(t, content.ID, item.ContentID)
	assert.Equal(t, model.SyncStatusSynced, item.SyncStatus)
	assert.Equal(t, int64(len(content.Content)), item.SizeBytes)

	require.Len(t, provider.uploads, 1)
	assert.Equal(t, content.Content, provider.uploads[item.LocalStorageKey])
}

func TestPackageContentIdempotent(t *testing.T) {
	db := setupTestDB(t)
	provider := newRecordingStorageProvider()
	svc := newOfflineService(db, provider)

	content := createContent(t, db, "Fractions", "mathematics", 2, model.English)

	first, err := svc.Package(context.Background(), content.ID)
	require.NoError(t, err)
	second, err := svc.Package(context.Background(), content.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, provider.uploads, 1)

	var count int64
	db.Model(&model.OfflineContent{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPackageContentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newOfflineService(db, newRecordingStorageProvider())

	_, err := svc.Package(context.Background(), 9999)
	assert.ErrorIs(t, err, util.ErrContentNotFound)
}
