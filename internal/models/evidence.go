package models

import (
	"time"
)

// Evidence maps to the evidence table. CollectedBy references an officer.
type Evidence struct {
	EvidenceID      int64      `json:"evidenceId" gorm:"column:evidence_id;primaryKey;autoIncrement"`
	Substances      *string    `json:"substances,omitempty" gorm:"column:substances;size:255"`
	Description     string     `json:"description" gorm:"column:description;not null"`
	Location        *string    `json:"location,omitempty" gorm:"column:location;size:255"`
	DateTime        *time.Time `json:"dateTime,omitempty" gorm:"column:date_time"`
	CollectedBy     *int64     `json:"collectedBy,omitempty" gorm:"column:collected_by"`
	StorageLocation *string    `json:"storageLocation,omitempty" gorm:"column:storage_location;size:255"`
	Status          *string    `json:"status,omitempty" gorm:"column:status;size:50"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Evidence.
func (Evidence) TableName() string {
	return "evidence"
}
