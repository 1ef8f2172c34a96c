package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfflineService struct {
	OfflineRepo *repository.OfflineRepository
	ContentRepo *repository.ContentRepository
	Storage     *StorageService
}

func NewOfflineService(offlineRepo *repository.OfflineRepository, contentRepo *repository.ContentRepository, storage *StorageService) *OfflineService {
	return &OfflineService{
		OfflineRepo: offlineRepo,
		ContentRepo: contentRepo,
		Storage:     storage,
	}
}

func (s *OfflineService) List() ([]model.OfflineContent, error) {
	return s.OfflineRepo.FindAll()
}

// Package uploads the content body to the storage provider and records the
// bookkeeping row. Packaging the same content twice returns the existing
// row unchanged.
func (s *OfflineService) Package(ctx context.Context, contentID uint) (*model.OfflineContent, error) {
	existing, err := s.OfflineRepo.FindByContentID(contentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	content, err := s.ContentRepo.FindByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("offline/%s.txt", uuid.New().String())
	body := strings.NewReader(content.Content)
	size := int64(len(content.Content))

	if _, err := s.Storage.Upload(ctx, key, body, size, "text/plain; charset=utf-8"); err != nil {
		return nil, err
	}

	item := &model.OfflineContent{
		ContentID:       contentID,
		SyncStatus:      model.SyncStatusSynced,
		LocalStorageKey: key,
		SizeBytes:       size,
	}
	if err := s.OfflineRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}
