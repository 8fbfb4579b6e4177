package models

import (
	"time"
)

// Officer maps to the officers table. Referenced by Case.AssignedTo and
// Evidence.CollectedBy.
type Officer struct {
	OfficerID   int64     `json:"officerId" gorm:"column:officer_id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;size:255"`
	Badge       string    `json:"badge" gorm:"column:badge;unique;not null;size:100"`
	Branch      *string   `json:"branch,omitempty" gorm:"column:branch;size:255"`
	Area        *string   `json:"area,omitempty" gorm:"column:area;size:255"`
	Position    *string   `json:"position,omitempty" gorm:"column:position;size:255"`
	ContactInfo *string   `json:"contactInfo,omitempty" gorm:"column:contact_info;size:255"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Officer.
func (Officer) TableName() string {
	return "officers"
}
