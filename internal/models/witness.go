package models

import (
	"time"
)

// Witness maps to the witnesses table.
type Witness struct {
	WitnessID      int64     `json:"witnessId" gorm:"column:witness_id;primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"column:name;not null;size:255"`
	Address        *string   `json:"address,omitempty" gorm:"column:address;size:255"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty" gorm:"column:phone_number;size:50"`
	Statement      *string   `json:"statement,omitempty" gorm:"column:statement"`
	RelationToCase *string   `json:"relationToCase,omitempty" gorm:"column:relation_to_case;size:255"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Witness.
func (Witness) TableName() string {
	return "witnesses"
}
