package model

type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending_sync"
)

// OfflineContent tracks content packaged for offline use.
type OfflineContent struct {
	BaseModel
	ContentID       uint       `gorm:"uniqueIndex;not null" json:"contentId"`
	SyncStatus      SyncStatus `gorm:"size:20;default:'synced'" json:"syncStatus"`
	LocalStorageKey string     `gorm:"size:120;not null" json:"localStorageKey"`
	SizeBytes       int64      `json:"sizeBytes"`

	Content *LearningContent `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (OfflineContent) TableName() string {
	return "offline_contents"
}
