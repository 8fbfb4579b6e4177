package models

import (
	"time"
)

// CaseRecord statuses.
const (
	RecordStatusActive = "active"
	RecordStatusClosed = "closed"
)

// Approval workflow states. Pending is the initial state; approved and
// rejected are terminal.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// CaseRecord maps to the caserecords table. It is the composite join row
// linking a case to optional victim/suspect/evidence rows and carrying the
// approval workflow state.
//
// OfficerID is always written as NULL by the insert paths; officer assignment
// lives on Case.AssignedTo and Evidence.CollectedBy. The column is kept so
// historic rows stay representable.
type CaseRecord struct {
	RecordID        int64      `json:"recordId" gorm:"column:record_id;primaryKey;autoIncrement"`
	CaseID          int64      `json:"caseId" gorm:"column:case_id;not null"`
	VictimID        *int64     `json:"victimId,omitempty" gorm:"column:victim_id"`
	SuspectID       *int64     `json:"suspectId,omitempty" gorm:"column:suspect_id"`
	EvidenceID      *int64     `json:"evidenceId,omitempty" gorm:"column:evidence_id"`
	OfficerID       *int64     `json:"officerId,omitempty" gorm:"column:officer_id"`
	CreatedBy       int64      `json:"createdBy" gorm:"column:created_by;not null"`
	Status          string     `json:"status" gorm:"column:status;not null;default:'active';size:50"`
	ApprovalStatus  string     `json:"approvalStatus" gorm:"column:approval_status;not null;default:'pending';size:50"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty" gorm:"column:approval_date"`
	ApprovedBy      *int64     `json:"approvedBy,omitempty" gorm:"column:approved_by"`
	RejectionReason *string    `json:"rejectionReason,omitempty" gorm:"column:rejection_reason"`
	DateCreated     time.Time  `json:"dateCreated" gorm:"column:date_created;not null;autoCreateTime"`
	LastUpdated     time.Time  `json:"lastUpdated" gorm:"column:last_updated;not null;autoUpdateTime"`
}

// TableName specifies the database table for CaseRecord.
func (CaseRecord) TableName() string {
	return "caserecords"
}

// IsValidRecordStatus reports whether s is a recognized record status.
func IsValidRecordStatus(s string) bool {
	return s == RecordStatusActive || s == RecordStatusClosed
}

// IsValidApprovalStatus reports whether s is a recognized approval state.
func IsValidApprovalStatus(s string) bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// CaseRecordResponse is a CaseRecord row joined with the display names the
// list endpoints expose alongside the raw foreign keys.
type CaseRecordResponse struct {
	RecordID        int64      `json:"recordId" gorm:"column:record_id"`
	CaseID          int64      `json:"caseId" gorm:"column:case_id"`
	VictimID        *int64     `json:"victimId,omitempty" gorm:"column:victim_id"`
	SuspectID       *int64     `json:"suspectId,omitempty" gorm:"column:suspect_id"`
	EvidenceID      *int64     `json:"evidenceId,omitempty" gorm:"column:evidence_id"`
	OfficerID       *int64     `json:"officerId,omitempty" gorm:"column:officer_id"`
	CreatedBy       int64      `json:"createdBy" gorm:"column:created_by"`
	Status          string     `json:"status" gorm:"column:status"`
	ApprovalStatus  string     `json:"approvalStatus" gorm:"column:approval_status"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty" gorm:"column:approval_date"`
	ApprovedBy      *int64     `json:"approvedBy,omitempty" gorm:"column:approved_by"`
	RejectionReason *string    `json:"rejectionReason,omitempty" gorm:"column:rejection_reason"`
	DateCreated     time.Time  `json:"dateCreated" gorm:"column:date_created"`
	LastUpdated     time.Time  `json:"lastUpdated" gorm:"column:last_updated"`
	IncidentType    *string    `json:"incidentType,omitempty" gorm:"column:incident_type"`
	VictimName      *string    `json:"victimName,omitempty" gorm:"column:victim_name"`
	SuspectName     *string    `json:"suspectName,omitempty" gorm:"column:suspect_name"`
	CreatedByName   *string    `json:"createdByName,omitempty" gorm:"column:created_by_name"`
}

// CaseRecordUpdatePayload is the allow-listed update DTO for a record. Only
// these fields may be changed through the generic update endpoint; approval
// fields move exclusively through the approve/reject workflow.
type CaseRecordUpdatePayload struct {
	CaseID     *int64  `json:"caseId,omitempty"`
	VictimID   *int64  `json:"victimId,omitempty"`
	SuspectID  *int64  `json:"suspectId,omitempty"`
	EvidenceID *int64  `json:"evidenceId,omitempty"`
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=active closed"`
}

// RecordStatistics is the one-pass aggregate over the caserecords table.
type RecordStatistics struct {
	TotalRecords     int64 `json:"totalRecords" gorm:"column:total_records"`
	ActiveRecords    int64 `json:"activeRecords" gorm:"column:active_records"`
	ClosedRecords    int64 `json:"closedRecords" gorm:"column:closed_records"`
	PendingApprovals int64 `json:"pendingApprovals" gorm:"column:pending_approvals"`
	ApprovedRecords  int64 `json:"approvedRecords" gorm:"column:approved_records"`
	RejectedRecords  int64 `json:"rejectedRecords" gorm:"column:rejected_records"`
	TotalSuspects    int64 `json:"totalSuspects" gorm:"column:total_suspects"`
	TotalVictims     int64 `json:"totalVictims" gorm:"column:total_victims"`
}
