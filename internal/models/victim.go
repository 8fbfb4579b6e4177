package models

import (
	"time"
)

// Victim maps to the victims table.
type Victim struct {
	VictimID    int64      `json:"victimId" gorm:"column:victim_id;primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"column:name;not null;size:255"`
	Address     *string    `json:"address,omitempty" gorm:"column:address;size:255"`
	PhoneNumber *string    `json:"phoneNumber,omitempty" gorm:"column:phone_number;size:50"`
	Email       *string    `json:"email,omitempty" gorm:"column:email;size:255"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" gorm:"column:date_of_birth;type:date"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Victim.
func (Victim) TableName() string {
	return "victims"
}
