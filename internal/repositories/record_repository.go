package repositories

import (
	"errors"
	"time"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// ErrUnknownChildKind is returned when LinkChild is called with a kind that
// has no corresponding foreign key column.
var ErrUnknownChildKind = errors.New("unknown child kind")

// ChildKind names a linkable child entity of a case record.
type ChildKind string

// Linkable child kinds. Each maps onto exactly one caserecords column; there
// is no generic column parameter, so nothing outside this allow-list can be
// written through LinkChild.
const (
	ChildVictim   ChildKind = "victim"
	ChildSuspect  ChildKind = "suspect"
	ChildEvidence ChildKind = "evidence"
)

var childColumns = map[ChildKind]string{
	ChildVictim:   "victim_id",
	ChildSuspect:  "suspect_id",
	ChildEvidence: "evidence_id",
}

// RecordFilter is the conjunctive filter set for listing case records.
type RecordFilter struct {
	Status         string
	ApprovalStatus string
	FromDate       *time.Time
	ToDate         *time.Time
}

// RecordRepository defines the data access surface for case records,
// including the approval-state transition and child linking.
type RecordRepository interface {
	WithTx(tx *gorm.DB) RecordRepository
	Create(record *models.CaseRecord) (*models.CaseRecord, error)
	FindByID(id int64) (*models.CaseRecord, error)
	// FindAll returns one page of records matching the filter, newest first,
	// together with the total number of matching rows.
	FindAll(filter RecordFilter, page, limit int) ([]models.CaseRecordResponse, int64, error)
	FindPending() ([]models.CaseRecordResponse, error)
	Update(id int64, updates map[string]interface{}) (*models.CaseRecord, error)
	DeleteByID(id int64) error
	// SettleApproval performs the pending -> target transition as a single
	// conditional update and reports the number of rows affected. Zero means
	// the record is absent or no longer pending; the caller distinguishes the
	// two with a follow-up read.
	SettleApproval(id int64, target string, approverID int64, reason *string, at time.Time) (int64, error)
	// LinkChild sets the foreign key column for the given child kind on an
	// existing record.
	LinkChild(recordID int64, kind ChildKind, childID int64) error
	Statistics() (*models.RecordStatistics, error)
}

type gormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new gormRecordRepository instance.
func NewGormRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

func (r *gormRecordRepository) WithTx(tx *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: tx}
}

func (r *gormRecordRepository) Create(record *models.CaseRecord) (*models.CaseRecord, error) {
	if err := r.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *gormRecordRepository) FindByID(id int64) (*models.CaseRecord, error) {
	var record models.CaseRecord
	if err := r.db.First(&record, "record_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// listQuery builds the joined projection shared by FindAll and FindPending.
func (r *gormRecordRepository) listQuery() *gorm.DB {
	return r.db.Model(&models.CaseRecord{}).
		Select(
			"caserecords.*",
			"cases.incident_type AS incident_type",
			"victims.name AS victim_name",
			"suspects.name AS suspect_name",
			"users.name AS created_by_name",
		).
		Joins("LEFT JOIN cases ON cases.case_id = caserecords.case_id").
		Joins("LEFT JOIN victims ON victims.victim_id = caserecords.victim_id").
		Joins("LEFT JOIN suspects ON suspects.suspect_id = caserecords.suspect_id").
		Joins("LEFT JOIN users ON users.id = caserecords.created_by")
}

func applyRecordFilter(tx *gorm.DB, filter RecordFilter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("caserecords.status = ?", filter.Status)
	}
	if filter.ApprovalStatus != "" {
		tx = tx.Where("caserecords.approval_status = ?", filter.ApprovalStatus)
	}
	if filter.FromDate != nil {
		tx = tx.Where("caserecords.date_created >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		tx = tx.Where("caserecords.date_created <= ?", *filter.ToDate)
	}
	return tx
}

func (r *gormRecordRepository) FindAll(filter RecordFilter, page, limit int) ([]models.CaseRecordResponse, int64, error) {
	var records []models.CaseRecordResponse
	var totalItems int64

	tx := applyRecordFilter(r.listQuery(), filter)

	// Count before applying pagination, with the same filters, so the
	// reported total matches what the pages actually contain.
	if err := tx.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := tx.Order("caserecords.date_created DESC").
		Limit(limit).
		Offset(offset).
		Scan(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, totalItems, nil
}

func (r *gormRecordRepository) FindPending() ([]models.CaseRecordResponse, error) {
	var records []models.CaseRecordResponse
	if err := r.listQuery().
		Where("caserecords.approval_status = ?", models.ApprovalStatusPending).
		Order("caserecords.date_created DESC").
		Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormRecordRepository) Update(id int64, updates map[string]interface{}) (*models.CaseRecord, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&models.CaseRecord{}).
			Where("record_id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

func (r *gormRecordRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.CaseRecord{}, "record_id = ?", id).Error
}

func (r *gormRecordRepository) SettleApproval(id int64, target string, approverID int64, reason *string, at time.Time) (int64, error) {
	updates := map[string]interface{}{
		"approval_status": target,
		"approval_date":   at,
		"approved_by":     approverID,
		"last_updated":    at,
	}
	if reason != nil {
		updates["rejection_reason"] = *reason
	}

	// The WHERE clause carries the pending guard, so two concurrent
	// transitions cannot both commit: the second sees zero rows affected.
	res := r.db.Model(&models.CaseRecord{}).
		Where("record_id = ? AND approval_status = ?", id, models.ApprovalStatusPending).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *gormRecordRepository) LinkChild(recordID int64, kind ChildKind, childID int64) error {
	column, ok := childColumns[kind]
	if !ok {
		return ErrUnknownChildKind
	}
	res := r.db.Model(&models.CaseRecord{}).
		Where("record_id = ?", recordID).
		Update(column, childID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRecordRepository) Statistics() (*models.RecordStatistics, error) {
	var stats models.RecordStatistics
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_records,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active_records,
			COUNT(CASE WHEN status = 'closed' THEN 1 END) AS closed_records,
			COUNT(CASE WHEN approval_status = 'pending' THEN 1 END) AS pending_approvals,
			COUNT(CASE WHEN approval_status = 'approved' THEN 1 END) AS approved_records,
			COUNT(CASE WHEN approval_status = 'rejected' THEN 1 END) AS rejected_records,
			COUNT(DISTINCT suspect_id) AS total_suspects,
			COUNT(DISTINCT victim_id) AS total_victims
		FROM caserecords`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
