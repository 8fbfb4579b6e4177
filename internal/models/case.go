package models

import (
	"time"
)

// Case statuses. A case starts as pending when created standalone and as open
// when created through the composite record workflow.
const (
	CaseStatusPending = "pending"
	CaseStatusOpen    = "open"
	CaseStatusClosed  = "closed"
)

// Case priorities.
const (
	CasePriorityLow    = "low"
	CasePriorityMedium = "medium"
	CasePriorityHigh   = "high"
)

// Case maps to the cases table.
type Case struct {
	CaseID       int64     `json:"caseId" gorm:"column:case_id;primaryKey;autoIncrement"`
	IncidentType string    `json:"incidentType" gorm:"column:incident_type;not null;size:255"`
	DateTime     time.Time `json:"dateTime" gorm:"column:date_time;not null"`
	Location     string    `json:"location" gorm:"column:location;not null;size:255"`
	Status       string    `json:"status" gorm:"column:status;not null;default:'pending';size:50"`
	Priority     string    `json:"priority" gorm:"column:priority;not null;default:'low';size:50"`
	Description  *string   `json:"description,omitempty" gorm:"column:description"`
	AssignedTo   *int64    `json:"assignedTo,omitempty" gorm:"column:assigned_to"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for Case.
func (Case) TableName() string {
	return "cases"
}

// IsValidCasePriority reports whether p is one of the recognized priorities.
func IsValidCasePriority(p string) bool {
	switch p {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh:
		return true
	}
	return false
}
