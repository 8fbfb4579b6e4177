package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
)

func newTestService(t *testing.T) (RecordService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Officer{},
		&models.Case{},
		&models.Victim{},
		&models.Suspect{},
		&models.Witness{},
		&models.Evidence{},
		&models.CaseRecord{},
	))

	svc := NewRecordService(
		db,
		repositories.NewGormRecordRepository(db),
		repositories.NewGormCaseRepository(db),
		repositories.NewGormVictimRepository(db),
		repositories.NewGormSuspectRepository(db),
		repositories.NewGormEvidenceRepository(db),
		repositories.NewGormUserRepository(db),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Seed " + role,
		Email:        role + "@crimelogix.local",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func validCaseInput() *models.Case {
	return &models.Case{
		IncidentType: "theft",
		DateTime:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Location:     "5th Ave",
	}
}

func TestCreateCompleteRecordValidation(t *testing.T) {
	svc, db := newTestService(t)
	user := seedUser(t, db, models.RoleOfficer)

	tests := []struct {
		name    string
		input   CompleteRecordInput
		wantErr error
	}{
		{
			name:    "missing case details",
			input:   CompleteRecordInput{OfficerID: 3},
			wantErr: ErrCaseDetailsRequired,
		},
		{
			name:    "missing officer id",
			input:   CompleteRecordInput{Case: validCaseInput()},
			wantErr: ErrCaseDetailsRequired,
		},
		{
			name: "incomplete case details",
			input: CompleteRecordInput{
				Case:      &models.Case{IncidentType: "theft"},
				OfficerID: 3,
			},
			wantErr: ErrIncompleteCaseDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCompleteRecord(tt.input, user.ID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing may persist from a failed composite create.
	assert.Zero(t, countRows(t, db, &models.Case{}))
	assert.Zero(t, countRows(t, db, &models.CaseRecord{}))
	assert.Zero(t, countRows(t, db, &models.Victim{}))
	assert.Zero(t, countRows(t, db, &models.Suspect{}))
	assert.Zero(t, countRows(t, db, &models.Evidence{}))
}

func TestCreateCompleteRecordCaseOnly(t *testing.T) {
	svc, db := newTestService(t)
	user := seedUser(t, db, models.RoleOfficer)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, user.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Record)
	require.NotNil(t, result.Case)
	assert.Nil(t, result.Victim)
	assert.Nil(t, result.Suspect)
	assert.Nil(t, result.Evidence)

	assert.Equal(t, result.Case.CaseID, result.Record.CaseID)
	assert.Equal(t, models.CaseStatusOpen, result.Case.Status)
	require.NotNil(t, result.Case.AssignedTo)
	assert.Equal(t, int64(3), *result.Case.AssignedTo)

	assert.Equal(t, models.RecordStatusActive, result.Record.Status)
	assert.Equal(t, models.ApprovalStatusPending, result.Record.ApprovalStatus)
	assert.Equal(t, user.ID, result.Record.CreatedBy)
	assert.Nil(t, result.Record.OfficerID)
}

func TestCreateCompleteRecordWithChildren(t *testing.T) {
	svc, db := newTestService(t)
	user := seedUser(t, db, models.RoleAdmin)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		Victim:    &models.Victim{Name: "Jane Roe"},
		Suspect:   &models.Suspect{Name: "John Doe"},
		Evidence:  &models.Evidence{Description: "crowbar"},
		OfficerID: 5,
	}, user.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Victim)
	require.NotNil(t, result.Suspect)
	require.NotNil(t, result.Evidence)

	require.NotNil(t, result.Record.VictimID)
	assert.Equal(t, result.Victim.VictimID, *result.Record.VictimID)
	require.NotNil(t, result.Record.SuspectID)
	assert.Equal(t, result.Suspect.SuspectID, *result.Record.SuspectID)

	// Evidence is stamped with the officer but linking stays explicit.
	require.NotNil(t, result.Evidence.CollectedBy)
	assert.Equal(t, int64(5), *result.Evidence.CollectedBy)
	assert.Nil(t, result.Record.EvidenceID)

	assert.Nil(t, result.Record.OfficerID)
	assert.Equal(t, int64(1), countRows(t, db, &models.Victim{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Suspect{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Evidence{}))
}

func TestInsertRecordManually(t *testing.T) {
	svc, db := newTestService(t)
	user := seedUser(t, db, models.RoleAdmin)

	kase := validCaseInput()
	require.NoError(t, db.Create(kase).Error)
	victim := &models.Victim{Name: "Jane Roe"}
	require.NoError(t, db.Create(victim).Error)

	recordID, err := svc.InsertRecordManually(ManualRecordInput{
		CaseID:    kase.CaseID,
		VictimID:  &victim.VictimID,
		CreatedBy: user.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, recordID)

	var record models.CaseRecord
	require.NoError(t, db.First(&record, "record_id = ?", recordID).Error)
	assert.Equal(t, kase.CaseID, record.CaseID)
	assert.Equal(t, models.RecordStatusActive, record.Status)
	assert.Equal(t, models.ApprovalStatusPending, record.ApprovalStatus)
	assert.Nil(t, record.OfficerID)
}

func TestInsertRecordManuallyMissingReferences(t *testing.T) {
	svc, db := newTestService(t)
	user := seedUser(t, db, models.RoleAdmin)

	kase := validCaseInput()
	require.NoError(t, db.Create(kase).Error)

	missing := int64(999)
	tests := []struct {
		name    string
		input   ManualRecordInput
		wantErr error
	}{
		{"missing required ids", ManualRecordInput{}, ErrManualFieldsRequired},
		{"case absent", ManualRecordInput{CaseID: missing, CreatedBy: user.ID}, ErrCaseNotFound},
		{"victim absent", ManualRecordInput{CaseID: kase.CaseID, VictimID: &missing, CreatedBy: user.ID}, ErrVictimNotFound},
		{"suspect absent", ManualRecordInput{CaseID: kase.CaseID, SuspectID: &missing, CreatedBy: user.ID}, ErrSuspectNotFound},
		{"evidence absent", ManualRecordInput{CaseID: kase.CaseID, EvidenceID: &missing, CreatedBy: user.ID}, ErrEvidenceNotFound},
		{"creator absent", ManualRecordInput{CaseID: kase.CaseID, CreatedBy: missing}, ErrCreatedByUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.InsertRecordManually(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, countRows(t, db, &models.CaseRecord{}))
}

func TestApproveRecord(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)
	admin := seedUser(t, db, models.RoleAdmin)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ApproveRecord(result.Record.RecordID, admin.ID))

	got, err := svc.GetRecord(result.Record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, admin.ID, *got.ApprovedBy)
	assert.NotNil(t, got.ApprovalDate)
	assert.Nil(t, got.RejectionReason)
}

func TestApproveRecordTerminalStates(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)
	admin := seedUser(t, db, models.RoleAdmin)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)
	recordID := result.Record.RecordID

	require.NoError(t, svc.ApproveRecord(recordID, admin.ID))

	// Terminal state rejects further transitions and leaves fields unchanged.
	assert.ErrorIs(t, svc.ApproveRecord(recordID, admin.ID), ErrRecordAlreadyProcessed)
	assert.ErrorIs(t, svc.RejectRecord(recordID, admin.ID, "too late"), ErrRecordAlreadyProcessed)

	got, err := svc.GetRecord(recordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
	assert.Nil(t, got.RejectionReason)
}

func TestApproveRecordNotFound(t *testing.T) {
	svc, db := newTestService(t)
	admin := seedUser(t, db, models.RoleAdmin)

	assert.ErrorIs(t, svc.ApproveRecord(999, admin.ID), ErrRecordNotFound)
}

func TestRejectRecord(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)
	admin := seedUser(t, db, models.RoleAdmin)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RejectRecord(result.Record.RecordID, admin.ID, "duplicate filing"))

	got, err := svc.GetRecord(result.Record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusRejected, got.ApprovalStatus)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "duplicate filing", *got.RejectionReason)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, admin.ID, *got.ApprovedBy)
	assert.NotNil(t, got.ApprovalDate)
}

func TestRejectRecordRequiresReason(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)
	admin := seedUser(t, db, models.RoleAdmin)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RejectRecord(result.Record.RecordID, admin.ID, ""), ErrRejectionReasonRequired)

	// The guard fires before storage; the record is untouched.
	got, err := svc.GetRecord(result.Record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, got.ApprovalStatus)
}

func TestListRecordsDefaults(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)

	for i := 0; i < 12; i++ {
		_, err := svc.CreateCompleteRecord(CompleteRecordInput{
			Case:      validCaseInput(),
			OfficerID: 3,
		}, creator.ID)
		require.NoError(t, err)
	}

	records, total, err := svc.ListRecords(RecordListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, records, 10)

	records, total, err = svc.ListRecords(RecordListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, records, 2)

	// Beyond the last page: empty slice, no error.
	records, _, err = svc.ListRecords(RecordListQuery{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestUpdateRecordAllowList(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)
	recordID := result.Record.RecordID

	closed := models.RecordStatusClosed
	updated, err := svc.UpdateRecord(recordID, models.CaseRecordUpdatePayload{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.RecordStatusClosed, updated.Status)
	assert.Equal(t, models.ApprovalStatusPending, updated.ApprovalStatus)

	bogus := "archived"
	_, err = svc.UpdateRecord(recordID, models.CaseRecordUpdatePayload{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidRecordStatus)

	missing := int64(999)
	_, err = svc.UpdateRecord(recordID, models.CaseRecordUpdatePayload{VictimID: &missing})
	assert.ErrorIs(t, err, ErrVictimNotFound)

	_, err = svc.UpdateRecord(recordID, models.CaseRecordUpdatePayload{})
	assert.ErrorIs(t, err, ErrNoUpdatableFields)

	victim := &models.Victim{Name: "Jane Roe"}
	require.NoError(t, db.Create(victim).Error)
	updated, err = svc.UpdateRecord(recordID, models.CaseRecordUpdatePayload{VictimID: &victim.VictimID})
	require.NoError(t, err)
	require.NotNil(t, updated.VictimID)
	assert.Equal(t, victim.VictimID, *updated.VictimID)
}

func TestDeleteRecord(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(result.Record.RecordID))
	_, err = svc.GetRecord(result.Record.RecordID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteRecord(result.Record.RecordID), ErrRecordNotFound)
}

func TestLinkChildToRecord(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)

	result, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		Evidence:  &models.Evidence{Description: "crowbar"},
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)
	recordID := result.Record.RecordID

	require.NoError(t, svc.LinkChildToRecord(recordID, repositories.ChildEvidence, result.Evidence.EvidenceID))

	got, err := svc.GetRecord(recordID)
	require.NoError(t, err)
	require.NotNil(t, got.EvidenceID)
	assert.Equal(t, result.Evidence.EvidenceID, *got.EvidenceID)

	assert.ErrorIs(t, svc.LinkChildToRecord(recordID, repositories.ChildVictim, 999), ErrVictimNotFound)
	assert.ErrorIs(t, svc.LinkChildToRecord(999, repositories.ChildEvidence, result.Evidence.EvidenceID), ErrRecordNotFound)
	assert.ErrorIs(t, svc.LinkChildToRecord(recordID, repositories.ChildKind("case"), 1), repositories.ErrUnknownChildKind)
}

func TestGetRecordStatistics(t *testing.T) {
	svc, db := newTestService(t)
	creator := seedUser(t, db, models.RoleOfficer)
	admin := seedUser(t, db, models.RoleAdmin)

	first, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		Suspect:   &models.Suspect{Name: "John Doe"},
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)
	second, err := svc.CreateCompleteRecord(CompleteRecordInput{
		Case:      validCaseInput(),
		Victim:    &models.Victim{Name: "Jane Roe"},
		OfficerID: 3,
	}, creator.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ApproveRecord(first.Record.RecordID, admin.ID))
	require.NoError(t, svc.RejectRecord(second.Record.RecordID, admin.ID, "withdrawn"))

	stats, err := svc.GetRecordStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalRecords)
	assert.Equal(t, int64(2), stats.ActiveRecords)
	assert.Equal(t, int64(0), stats.PendingApprovals)
	assert.Equal(t, int64(1), stats.ApprovedRecords)
	assert.Equal(t, int64(1), stats.RejectedRecords)
	assert.Equal(t, int64(1), stats.TotalSuspects)
	assert.Equal(t, int64(1), stats.TotalVictims)
}
