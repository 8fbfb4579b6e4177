package models

import (
	"time"
)

// Suspect maps to the suspects table.
type Suspect struct {
	SuspectID   int64     `json:"suspectId" gorm:"column:suspect_id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;size:255"`
	Address     *string   `json:"address,omitempty" gorm:"column:address;size:255"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" gorm:"column:phone_number;size:50"`
	Description *string   `json:"description,omitempty" gorm:"column:description"`
	Status      *string   `json:"status,omitempty" gorm:"column:status;size:50"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Suspect.
func (Suspect) TableName() string {
	return "suspects"
}
