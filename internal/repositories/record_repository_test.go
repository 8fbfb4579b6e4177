package repositories

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
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedCase(t *testing.T, db *gorm.DB) *models.Case {
	t.Helper()
	kase := &models.Case{
		IncidentType: "theft",
		DateTime:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Location:     "5th Ave",
		Status:       models.CaseStatusOpen,
		Priority:     models.CasePriorityLow,
	}
	require.NoError(t, db.Create(kase).Error)
	return kase
}

func seedRecord(t *testing.T, db *gorm.DB, caseID int64, status, approval string, created time.Time) *models.CaseRecord {
	t.Helper()
	record := &models.CaseRecord{
		CaseID:         caseID,
		CreatedBy:      1,
		Status:         status,
		ApprovalStatus: approval,
		DateCreated:    created,
	}
	require.NoError(t, db.Create(record).Error)
	return record
}

func TestSettleApprovalGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)
	record := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, time.Now())

	now := time.Now()
	affected, err := repo.SettleApproval(record.RecordID, models.ApprovalStatusApproved, 7, nil, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, int64(7), *got.ApprovedBy)
	require.NotNil(t, got.ApprovalDate)
	assert.Nil(t, got.RejectionReason)

	// The record already left pending, so a second transition matches no row.
	affected, err = repo.SettleApproval(record.RecordID, models.ApprovalStatusRejected, 8, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	unchanged, err := repo.FindByID(record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, unchanged.ApprovalStatus)
	assert.Equal(t, int64(7), *unchanged.ApprovedBy)
}

func TestSettleApprovalRejectStoresReason(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)
	record := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, time.Now())

	reason := "insufficient evidence"
	affected, err := repo.SettleApproval(record.RecordID, models.ApprovalStatusRejected, 3, &reason, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(record.RecordID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusRejected, got.ApprovalStatus)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, reason, *got.RejectionReason)
}

func TestSettleApprovalMissingRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)

	affected, err := repo.SettleApproval(999, models.ApprovalStatusApproved, 1, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestFindAllFiltersAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	older := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, base)
	newer := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, base.Add(48*time.Hour))
	seedRecord(t, db, kase.CaseID, models.RecordStatusClosed, models.ApprovalStatusApproved, base.Add(24*time.Hour))

	records, total, err := repo.FindAll(RecordFilter{
		Status:         models.RecordStatusActive,
		ApprovalStatus: models.ApprovalStatusPending,
	}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	assert.Equal(t, newer.RecordID, records[0].RecordID)
	assert.Equal(t, older.RecordID, records[1].RecordID)

	// Date window keeps the middle record out.
	from := base.Add(36 * time.Hour)
	records, total, err = repo.FindAll(RecordFilter{FromDate: &from}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, newer.RecordID, records[0].RecordID)
}

func TestFindAllCountsWithFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)

	now := time.Now()
	for i := 0; i < 5; i++ {
		seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, now.Add(time.Duration(i)*time.Minute))
	}
	seedRecord(t, db, kase.CaseID, models.RecordStatusClosed, models.ApprovalStatusRejected, now)

	// The total must reflect the filter, not the whole table.
	records, total, err := repo.FindAll(RecordFilter{Status: models.RecordStatusActive}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, records, 2)

	// A page past the end is empty, not an error.
	records, total, err = repo.FindAll(RecordFilter{Status: models.RecordStatusActive}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, records)
}

func TestFindAllJoinsNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)

	victim := &models.Victim{Name: "Jane Roe"}
	require.NoError(t, db.Create(victim).Error)
	user := &models.User{Name: "Desk Admin", Email: "desk@crimelogix.local", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(user).Error)

	record := &models.CaseRecord{
		CaseID:         kase.CaseID,
		VictimID:       &victim.VictimID,
		CreatedBy:      user.ID,
		Status:         models.RecordStatusActive,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	require.NoError(t, db.Create(record).Error)

	records, total, err := repo.FindAll(RecordFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].IncidentType)
	assert.Equal(t, "theft", *records[0].IncidentType)
	require.NotNil(t, records[0].VictimName)
	assert.Equal(t, "Jane Roe", *records[0].VictimName)
	require.NotNil(t, records[0].CreatedByName)
	assert.Equal(t, "Desk Admin", *records[0].CreatedByName)
	assert.Nil(t, records[0].SuspectName)
}

func TestFindPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)

	now := time.Now()
	pending := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, now)
	seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusApproved, now)

	records, err := repo.FindPending()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, pending.RecordID, records[0].RecordID)
}

func TestLinkChild(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)
	record := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, time.Now())

	suspect := &models.Suspect{Name: "John Doe"}
	require.NoError(t, db.Create(suspect).Error)

	require.NoError(t, repo.LinkChild(record.RecordID, ChildSuspect, suspect.SuspectID))

	got, err := repo.FindByID(record.RecordID)
	require.NoError(t, err)
	require.NotNil(t, got.SuspectID)
	assert.Equal(t, suspect.SuspectID, *got.SuspectID)
}

func TestLinkChildUnknownKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)

	err := repo.LinkChild(1, ChildKind("officer"), 1)
	assert.ErrorIs(t, err, ErrUnknownChildKind)
}

func TestLinkChildMissingRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)

	victim := &models.Victim{Name: "Jane Roe"}
	require.NoError(t, db.Create(victim).Error)

	err := repo.LinkChild(42, ChildVictim, victim.VictimID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecordRepository(db)
	kase := seedCase(t, db)

	suspect := &models.Suspect{Name: "John Doe"}
	require.NoError(t, db.Create(suspect).Error)
	victimA := &models.Victim{Name: "A"}
	victimB := &models.Victim{Name: "B"}
	require.NoError(t, db.Create(victimA).Error)
	require.NoError(t, db.Create(victimB).Error)

	now := time.Now()
	r1 := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusPending, now)
	r2 := seedRecord(t, db, kase.CaseID, models.RecordStatusActive, models.ApprovalStatusApproved, now)
	seedRecord(t, db, kase.CaseID, models.RecordStatusClosed, models.ApprovalStatusRejected, now)

	// Two records share a suspect; two distinct victims.
	require.NoError(t, db.Model(r1).Updates(map[string]interface{}{"suspect_id": suspect.SuspectID, "victim_id": victimA.VictimID}).Error)
	require.NoError(t, db.Model(r2).Updates(map[string]interface{}{"suspect_id": suspect.SuspectID, "victim_id": victimB.VictimID}).Error)

	stats, err := repo.Statistics()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalRecords)
	assert.Equal(t, int64(2), stats.ActiveRecords)
	assert.Equal(t, int64(1), stats.ClosedRecords)
	assert.Equal(t, int64(1), stats.PendingApprovals)
	assert.Equal(t, int64(1), stats.ApprovedRecords)
	assert.Equal(t, int64(1), stats.RejectedRecords)
	assert.Equal(t, int64(1), stats.TotalSuspects)
	assert.Equal(t, int64(2), stats.TotalVictims)
}
