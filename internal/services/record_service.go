package services

import (
	"errors"
	"time"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
	"gorm.io/gorm"
)

// Workflow errors surfaced to the API layer. Messages follow the wire
// contract, so handlers can pass them through verbatim.
var (
	ErrCaseDetailsRequired     = errors.New("Case details and officer ID are required")
	ErrIncompleteCaseDetails   = errors.New("Incomplete case details")
	ErrManualFieldsRequired    = errors.New("caseId and createdBy are required")
	ErrRejectionReasonRequired = errors.New("Rejection reason is required")
	ErrRecordNotFound          = errors.New("Record not found")
	ErrRecordAlreadyProcessed  = errors.New("Record is already processed")
	ErrCaseNotFound            = errors.New("Case not found")
	ErrVictimNotFound          = errors.New("Victim not found")
	ErrSuspectNotFound         = errors.New("Suspect not found")
	ErrEvidenceNotFound        = errors.New("Evidence not found")
	ErrCreatedByUserNotFound   = errors.New("CreatedBy user not found")
	ErrInvalidRecordStatus     = errors.New("Invalid record status")
	ErrNoUpdatableFields       = errors.New("No updatable fields provided")
)

// CompleteRecordInput carries the entities of a composite create. Case is
// mandatory; the children are optional.
type CompleteRecordInput struct {
	Case      *models.Case
	Victim    *models.Victim
	Suspect   *models.Suspect
	Evidence  *models.Evidence
	OfficerID int64
}

// CompleteRecordResult returns every entity created by a composite create.
type CompleteRecordResult struct {
	Record   *models.CaseRecord `json:"record"`
	Case     *models.Case       `json:"case"`
	Victim   *models.Victim     `json:"victim,omitempty"`
	Suspect  *models.Suspect    `json:"suspect,omitempty"`
	Evidence *models.Evidence   `json:"evidence,omitempty"`
}

// ManualRecordInput carries pre-existing foreign ids for a manual insert.
type ManualRecordInput struct {
	CaseID     int64
	VictimID   *int64
	SuspectID  *int64
	EvidenceID *int64
	CreatedBy  int64
}

// RecordListQuery is the filter and pagination input for ListRecords.
type RecordListQuery struct {
	Status         string
	ApprovalStatus string
	FromDate       *time.Time
	ToDate         *time.Time
	Page           int
	Limit          int
}

// RecordService owns the composite record workflow: atomic multi-entity
// creation and the approval state machine.
type RecordService interface {
	CreateCompleteRecord(input CompleteRecordInput, requestingUserID int64) (*CompleteRecordResult, error)
	InsertRecordManually(input ManualRecordInput) (int64, error)
	ApproveRecord(recordID, approverID int64) error
	RejectRecord(recordID, approverID int64, reason string) error
	ListRecords(query RecordListQuery) ([]models.CaseRecordResponse, int64, error)
	GetPendingRecords() ([]models.CaseRecordResponse, error)
	GetRecord(recordID int64) (*models.CaseRecord, error)
	UpdateRecord(recordID int64, payload models.CaseRecordUpdatePayload) (*models.CaseRecord, error)
	DeleteRecord(recordID int64) error
	LinkChildToRecord(recordID int64, kind repositories.ChildKind, childID int64) error
	GetRecordStatistics() (*models.RecordStatistics, error)
}

type recordService struct {
	db       *gorm.DB
	records  repositories.RecordRepository
	cases    repositories.CaseRepository
	victims  repositories.VictimRepository
	suspects repositories.SuspectRepository
	evidence repositories.EvidenceRepository
	users    repositories.UserRepository
}

// NewRecordService creates a new recordService instance. The db handle is the
// transaction boundary for every multi-row write; repositories are rebound to
// it per transaction via WithTx.
func NewRecordService(
	db *gorm.DB,
	records repositories.RecordRepository,
	cases repositories.CaseRepository,
	victims repositories.VictimRepository,
	suspects repositories.SuspectRepository,
	evidence repositories.EvidenceRepository,
	users repositories.UserRepository,
) RecordService {
	return &recordService{
		db:       db,
		records:  records,
		cases:    cases,
		victims:  victims,
		suspects: suspects,
		evidence: evidence,
		users:    users,
	}
}

// CreateCompleteRecord creates a case, any supplied child entities and the
// linking case record inside one transaction. Nothing persists unless every
// insert succeeds.
func (s *recordService) CreateCompleteRecord(input CompleteRecordInput, requestingUserID int64) (*CompleteRecordResult, error) {
	if input.Case == nil || input.OfficerID == 0 {
		return nil, ErrCaseDetailsRequired
	}
	if input.Case.IncidentType == "" || input.Case.DateTime.IsZero() || input.Case.Location == "" {
		return nil, ErrIncompleteCaseDetails
	}

	result := &CompleteRecordResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		officerID := input.OfficerID

		kase := input.Case
		kase.Status = models.CaseStatusOpen
		kase.AssignedTo = &officerID
		if _, err := s.cases.WithTx(tx).Create(kase); err != nil {
			return err
		}
		result.Case = kase

		record := &models.CaseRecord{
			CaseID:         kase.CaseID,
			CreatedBy:      requestingUserID,
			Status:         models.RecordStatusActive,
			ApprovalStatus: models.ApprovalStatusPending,
		}

		if input.Victim != nil {
			if _, err := s.victims.WithTx(tx).Create(input.Victim); err != nil {
				return err
			}
			result.Victim = input.Victim
			record.VictimID = &input.Victim.VictimID
		}

		if input.Suspect != nil {
			if _, err := s.suspects.WithTx(tx).Create(input.Suspect); err != nil {
				return err
			}
			result.Suspect = input.Suspect
			record.SuspectID = &input.Suspect.SuspectID
		}

		if input.Evidence != nil {
			input.Evidence.CollectedBy = &officerID
			if _, err := s.evidence.WithTx(tx).Create(input.Evidence); err != nil {
				return err
			}
			// The evidence row is created and stamped but not referenced by
			// the new record; linking goes through LinkChildToRecord.
			result.Evidence = input.Evidence
		}

		// OfficerID stays NULL on the record itself: officer assignment
		// lives on Case.AssignedTo and Evidence.CollectedBy.
		if _, err := s.records.WithTx(tx).Create(record); err != nil {
			return err
		}
		result.Record = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InsertRecordManually inserts a case record over pre-existing rows after
// verifying every supplied reference inside one transaction.
func (s *recordService) InsertRecordManually(input ManualRecordInput) (int64, error) {
	if input.CaseID == 0 || input.CreatedBy == 0 {
		return 0, ErrManualFieldsRequired
	}

	var recordID int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.cases.WithTx(tx).FindByID(input.CaseID); err != nil {
			return notFoundOr(err, ErrCaseNotFound)
		}
		if input.VictimID != nil {
			if _, err := s.victims.WithTx(tx).FindByID(*input.VictimID); err != nil {
				return notFoundOr(err, ErrVictimNotFound)
			}
		}
		if input.SuspectID != nil {
			if _, err := s.suspects.WithTx(tx).FindByID(*input.SuspectID); err != nil {
				return notFoundOr(err, ErrSuspectNotFound)
			}
		}
		if input.EvidenceID != nil {
			if _, err := s.evidence.WithTx(tx).FindByID(*input.EvidenceID); err != nil {
				return notFoundOr(err, ErrEvidenceNotFound)
			}
		}
		if _, err := s.users.WithTx(tx).FindByID(input.CreatedBy); err != nil {
			return notFoundOr(err, ErrCreatedByUserNotFound)
		}

		record := &models.CaseRecord{
			CaseID:         input.CaseID,
			VictimID:       input.VictimID,
			SuspectID:      input.SuspectID,
			EvidenceID:     input.EvidenceID,
			OfficerID:      nil,
			CreatedBy:      input.CreatedBy,
			Status:         models.RecordStatusActive,
			ApprovalStatus: models.ApprovalStatusPending,
		}
		if _, err := s.records.WithTx(tx).Create(record); err != nil {
			return err
		}
		recordID = record.RecordID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return recordID, nil
}

// ApproveRecord transitions a pending record to approved and stamps the
// audit fields. A record that is absent fails with ErrRecordNotFound; one
// that already left pending fails with ErrRecordAlreadyProcessed.
func (s *recordService) ApproveRecord(recordID, approverID int64) error {
	return s.settle(recordID, models.ApprovalStatusApproved, approverID, nil)
}

// RejectRecord transitions a pending record to rejected. The reason is
// mandatory and is checked before any storage access.
func (s *recordService) RejectRecord(recordID, approverID int64, reason string) error {
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	return s.settle(recordID, models.ApprovalStatusRejected, approverID, &reason)
}

func (s *recordService) settle(recordID int64, target string, approverID int64, reason *string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		records := s.records.WithTx(tx)
		affected, err := records.SettleApproval(recordID, target, approverID, reason, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := records.FindByID(recordID); err != nil {
				return notFoundOr(err, ErrRecordNotFound)
			}
			return ErrRecordAlreadyProcessed
		}
		return nil
	})
}

// ListRecords applies the query's filters conjunctively and pages the result
// newest first. Page and limit fall back to 1 and 10.
func (s *recordService) ListRecords(query RecordListQuery) ([]models.CaseRecordResponse, int64, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}
	filter := repositories.RecordFilter{
		Status:         query.Status,
		ApprovalStatus: query.ApprovalStatus,
		FromDate:       query.FromDate,
		ToDate:         query.ToDate,
	}
	records, total, err := s.records.FindAll(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if records == nil {
		records = []models.CaseRecordResponse{}
	}
	return records, total, nil
}

func (s *recordService) GetPendingRecords() ([]models.CaseRecordResponse, error) {
	records, err := s.records.FindPending()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.CaseRecordResponse{}
	}
	return records, nil
}

func (s *recordService) GetRecord(recordID int64) (*models.CaseRecord, error) {
	record, err := s.records.FindByID(recordID)
	if err != nil {
		return nil, notFoundOr(err, ErrRecordNotFound)
	}
	return record, nil
}

// UpdateRecord applies an allow-listed update. Foreign ids in the payload
// are verified against their tables inside the same transaction before
// anything is written.
func (s *recordService) UpdateRecord(recordID int64, payload models.CaseRecordUpdatePayload) (*models.CaseRecord, error) {
	updates := make(map[string]interface{})
	var updated *models.CaseRecord

	err := s.db.Transaction(func(tx *gorm.DB) error {
		records := s.records.WithTx(tx)
		if _, err := records.FindByID(recordID); err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}

		if payload.CaseID != nil {
			if _, err := s.cases.WithTx(tx).FindByID(*payload.CaseID); err != nil {
				return notFoundOr(err, ErrCaseNotFound)
			}
			updates["case_id"] = *payload.CaseID
		}
		if payload.VictimID != nil {
			if _, err := s.victims.WithTx(tx).FindByID(*payload.VictimID); err != nil {
				return notFoundOr(err, ErrVictimNotFound)
			}
			updates["victim_id"] = *payload.VictimID
		}
		if payload.SuspectID != nil {
			if _, err := s.suspects.WithTx(tx).FindByID(*payload.SuspectID); err != nil {
				return notFoundOr(err, ErrSuspectNotFound)
			}
			updates["suspect_id"] = *payload.SuspectID
		}
		if payload.EvidenceID != nil {
			if _, err := s.evidence.WithTx(tx).FindByID(*payload.EvidenceID); err != nil {
				return notFoundOr(err, ErrEvidenceNotFound)
			}
			updates["evidence_id"] = *payload.EvidenceID
		}
		if payload.Status != nil {
			if !models.IsValidRecordStatus(*payload.Status) {
				return ErrInvalidRecordStatus
			}
			updates["status"] = *payload.Status
		}

		if len(updates) == 0 {
			return ErrNoUpdatableFields
		}

		var err error
		updated, err = records.Update(recordID, updates)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *recordService) DeleteRecord(recordID int64) error {
	if _, err := s.records.FindByID(recordID); err != nil {
		return notFoundOr(err, ErrRecordNotFound)
	}
	return s.records.DeleteByID(recordID)
}

// LinkChildToRecord sets the record's foreign key for the given child after
// verifying both sides exist. This is the explicit replacement for the FK
// back-fill the child create paths used to perform implicitly.
func (s *recordService) LinkChildToRecord(recordID int64, kind repositories.ChildKind, childID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		switch kind {
		case repositories.ChildVictim:
			if _, err := s.victims.WithTx(tx).FindByID(childID); err != nil {
				return notFoundOr(err, ErrVictimNotFound)
			}
		case repositories.ChildSuspect:
			if _, err := s.suspects.WithTx(tx).FindByID(childID); err != nil {
				return notFoundOr(err, ErrSuspectNotFound)
			}
		case repositories.ChildEvidence:
			if _, err := s.evidence.WithTx(tx).FindByID(childID); err != nil {
				return notFoundOr(err, ErrEvidenceNotFound)
			}
		default:
			return repositories.ErrUnknownChildKind
		}

		if err := s.records.WithTx(tx).LinkChild(recordID, kind, childID); err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		return nil
	})
}

func (s *recordService) GetRecordStatistics() (*models.RecordStatistics, error) {
	return s.records.Statistics()
}

// notFoundOr maps a gorm not-found onto the domain error and passes other
// storage errors through untouched.
func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
