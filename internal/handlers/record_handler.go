package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
	"github.com/wizard-2006/CrimeLogix/internal/services"
	"github.com/wizard-2006/CrimeLogix/pkg/utils"
)

// RecordHandler wraps the HTTP surface of the record workflow.
type RecordHandler struct {
	service services.RecordService
}

// NewRecordHandler creates a new RecordHandler instance.
func NewRecordHandler(service services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// CaseDetailsPayload is the case slice of a composite create request.
type CaseDetailsPayload struct {
	IncidentType string  `json:"incidentType"`
	DateTime     string  `json:"dateTime"`
	Location     string  `json:"location"`
	Priority     *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Description  *string `json:"description,omitempty"`
}

// VictimDetailsPayload is the optional victim slice of a composite create.
type VictimDetailsPayload struct {
	Name        string  `json:"name" binding:"required"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}

// SuspectDetailsPayload is the optional suspect slice of a composite create.
type SuspectDetailsPayload struct {
	Name        string  `json:"name" binding:"required"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// EvidenceDetailsPayload is the optional evidence slice of a composite
// create. CollectedBy is stamped from officerId server-side.
type EvidenceDetailsPayload struct {
	Substances      *string `json:"substances,omitempty"`
	Description     string  `json:"description" binding:"required"`
	Location        *string `json:"location,omitempty"`
	DateTime        *string `json:"dateTime,omitempty"`
	StorageLocation *string `json:"storageLocation,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// CreateCompleteRecordPayload is the composite create request body.
// Presence of caseDetails/officerId is validated by the workflow so the
// error messages stay uniform.
type CreateCompleteRecordPayload struct {
	CaseDetails     *CaseDetailsPayload     `json:"caseDetails"`
	VictimDetails   *VictimDetailsPayload   `json:"victimDetails,omitempty"`
	SuspectDetails  *SuspectDetailsPayload  `json:"suspectDetails,omitempty"`
	EvidenceDetails *EvidenceDetailsPayload `json:"evidenceDetails,omitempty"`
	OfficerID       int64                   `json:"officerId"`
}

// InsertRecordManuallyPayload is the manual insert request body.
type InsertRecordManuallyPayload struct {
	CaseID     int64  `json:"caseId"`
	VictimID   *int64 `json:"victimId,omitempty"`
	SuspectID  *int64 `json:"suspectId,omitempty"`
	EvidenceID *int64 `json:"evidenceId,omitempty"`
	CreatedBy  int64  `json:"createdBy"`
}

// RejectRecordPayload carries the mandatory rejection reason.
type RejectRecordPayload struct {
	Reason string `json:"reason"`
}

// LinkChildPayload names an existing child row to attach to a record.
type LinkChildPayload struct {
	Kind    string `json:"kind" binding:"required,oneof=victim suspect evidence"`
	ChildID int64  `json:"childId" binding:"required"`
}

// respondWorkflowError maps workflow errors onto the uniform error envelope.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrCaseNotFound),
		errors.Is(err, services.ErrVictimNotFound),
		errors.Is(err, services.ErrSuspectNotFound),
		errors.Is(err, services.ErrEvidenceNotFound),
		errors.Is(err, services.ErrCreatedByUserNotFound):
		utils.RespondNotFoundError(c, err.Error())
	case errors.Is(err, services.ErrRecordAlreadyProcessed):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrCaseDetailsRequired),
		errors.Is(err, services.ErrIncompleteCaseDetails),
		errors.Is(err, services.ErrManualFieldsRequired),
		errors.Is(err, services.ErrRejectionReasonRequired),
		errors.Is(err, services.ErrInvalidRecordStatus),
		errors.Is(err, services.ErrNoUpdatableFields),
		errors.Is(err, repositories.ErrUnknownChildKind):
		utils.RespondValidationError(c, err.Error())
	default:
		utils.RespondInternalServerError(c)
	}
}

func parseRecordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.RespondValidationError(c, "Invalid record id")
		return 0, false
	}
	return id, true
}

// CreateCompleteRecord godoc
// @Summary Create a complete case record
// @Description Atomically creates a case, any supplied victim/suspect/evidence, and the linking case record.
// @Tags Records
// @Accept json
// @Produce json
// @Param body body CreateCompleteRecordPayload true "Record details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /records [post]
// @Security BearerAuth
func (h *RecordHandler) CreateCompleteRecord(c *gin.Context) {
	var payload CreateCompleteRecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	input := services.CompleteRecordInput{OfficerID: payload.OfficerID}

	if payload.CaseDetails != nil {
		kase := &models.Case{
			IncidentType: payload.CaseDetails.IncidentType,
			Location:     payload.CaseDetails.Location,
			Description:  payload.CaseDetails.Description,
		}
		if payload.CaseDetails.Priority != nil {
			kase.Priority = *payload.CaseDetails.Priority
		}
		if payload.CaseDetails.DateTime != "" {
			dt, err := utils.ParseDate(payload.CaseDetails.DateTime)
			if err != nil {
				utils.RespondValidationError(c, "Invalid case dateTime: "+err.Error())
				return
			}
			kase.DateTime = dt
		}
		input.Case = kase
	}

	if payload.VictimDetails != nil {
		victim := &models.Victim{
			Name:        payload.VictimDetails.Name,
			Address:     payload.VictimDetails.Address,
			PhoneNumber: payload.VictimDetails.PhoneNumber,
			Email:       payload.VictimDetails.Email,
		}
		if payload.VictimDetails.DateOfBirth != nil {
			dob, err := utils.ParseDate(*payload.VictimDetails.DateOfBirth)
			if err != nil {
				utils.RespondValidationError(c, "Invalid victim dateOfBirth: "+err.Error())
				return
			}
			victim.DateOfBirth = &dob
		}
		input.Victim = victim
	}

	if payload.SuspectDetails != nil {
		input.Suspect = &models.Suspect{
			Name:        payload.SuspectDetails.Name,
			Address:     payload.SuspectDetails.Address,
			PhoneNumber: payload.SuspectDetails.PhoneNumber,
			Description: payload.SuspectDetails.Description,
			Status:      payload.SuspectDetails.Status,
		}
	}

	if payload.EvidenceDetails != nil {
		evidence := &models.Evidence{
			Substances:      payload.EvidenceDetails.Substances,
			Description:     payload.EvidenceDetails.Description,
			Location:        payload.EvidenceDetails.Location,
			StorageLocation: payload.EvidenceDetails.StorageLocation,
			Status:          payload.EvidenceDetails.Status,
		}
		if payload.EvidenceDetails.DateTime != nil {
			dt, err := utils.ParseDate(*payload.EvidenceDetails.DateTime)
			if err != nil {
				utils.RespondValidationError(c, "Invalid evidence dateTime: "+err.Error())
				return
			}
			evidence.DateTime = &dt
		}
		input.Evidence = evidence
	}

	result, err := h.service.CreateCompleteRecord(input, user.ID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"record":   result.Record,
		"case":     result.Case,
		"victim":   result.Victim,
		"suspect":  result.Suspect,
		"evidence": result.Evidence,
	})
}

// InsertRecordManually godoc
// @Summary Insert a case record over pre-existing rows
// @Tags Records
// @Accept json
// @Produce json
// @Param body body InsertRecordManuallyPayload true "Foreign ids"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/manual [post]
// @Security BearerAuth
func (h *RecordHandler) InsertRecordManually(c *gin.Context) {
	var payload InsertRecordManuallyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	recordID, err := h.service.InsertRecordManually(services.ManualRecordInput{
		CaseID:     payload.CaseID,
		VictimID:   payload.VictimID,
		SuspectID:  payload.SuspectID,
		EvidenceID: payload.EvidenceID,
		CreatedBy:  payload.CreatedBy,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Record inserted manually into caserecords table with officerId set as NULL",
		"recordId": recordID,
	})
}

// GetAllRecords godoc
// @Summary List case records
// @Description Filters are applied conjunctively; results are ordered by dateCreated descending.
// @Tags Records
// @Produce json
// @Param status query string false "Record status filter"
// @Param approvalStatus query string false "Approval status filter"
// @Param fromDate query string false "Earliest dateCreated"
// @Param toDate query string false "Latest dateCreated"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Router /records [get]
// @Security BearerAuth
func (h *RecordHandler) GetAllRecords(c *gin.Context) {
	query := services.RecordListQuery{
		Status:         c.Query("status"),
		ApprovalStatus: c.Query("approvalStatus"),
		Page:           1,
		Limit:          10,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			utils.RespondValidationError(c, "Invalid page parameter")
			return
		}
		query.Page = page
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			utils.RespondValidationError(c, "Invalid limit parameter")
			return
		}
		query.Limit = limit
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		from, err := utils.ParseDate(fromStr)
		if err != nil {
			utils.RespondValidationError(c, "Invalid fromDate: "+err.Error())
			return
		}
		query.FromDate = &from
	}
	if toStr := c.Query("toDate"); toStr != "" {
		to, err := utils.ParseDate(toStr)
		if err != nil {
			utils.RespondValidationError(c, "Invalid toDate: "+err.Error())
			return
		}
		query.ToDate = &to
	}

	records, total, err := h.service.ListRecords(query)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	totalPages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
		"pagination": PaginationInfo{
			CurrentPage:  query.Page,
			TotalPages:   totalPages,
			TotalRecords: total,
			Limit:        query.Limit,
		},
	})
}

// GetPendingRecords godoc
// @Summary List records awaiting approval
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /records/pending [get]
// @Security BearerAuth
func (h *RecordHandler) GetPendingRecords(c *gin.Context) {
	records, err := h.service.GetPendingRecords()
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "records": records})
}

// ApproveRecord godoc
// @Summary Approve a pending record
// @Tags Records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id}/approve [put]
// @Security BearerAuth
func (h *RecordHandler) ApproveRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	if err := h.service.ApproveRecord(recordID, user.ID); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record approved successfully"})
}

// RejectRecord godoc
// @Summary Reject a pending record
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param body body RejectRecordPayload true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id}/reject [put]
// @Security BearerAuth
func (h *RecordHandler) RejectRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	var payload RejectRecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, services.ErrRejectionReasonRequired.Error())
		return
	}

	if err := h.service.RejectRecord(recordID, user.ID, payload.Reason); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record rejected successfully"})
}

// GetRecordStats godoc
// @Summary Aggregate counts over the caserecords table
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /records/stats [get]
// @Security BearerAuth
func (h *RecordHandler) GetRecordStats(c *gin.Context) {
	stats, err := h.service.GetRecordStatistics()
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}

// GetRecord godoc
// @Summary Fetch a single record
// @Tags Records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id} [get]
// @Security BearerAuth
func (h *RecordHandler) GetRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	record, err := h.service.GetRecord(recordID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "record": record})
}

// LinkChildToRecord godoc
// @Summary Attach an existing victim, suspect or evidence row to a record
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param body body LinkChildPayload true "Child to link"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id}/link [put]
// @Security BearerAuth
func (h *RecordHandler) LinkChildToRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	var payload LinkChildPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, "kind (victim, suspect or evidence) and childId are required")
		return
	}

	if err := h.service.LinkChildToRecord(recordID, repositories.ChildKind(payload.Kind), payload.ChildID); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record linked successfully"})
}

// UpdateRecord godoc
// @Summary Update allow-listed record fields
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param body body models.CaseRecordUpdatePayload true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id} [put]
// @Security BearerAuth
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}

	var payload models.CaseRecordUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	record, err := h.service.UpdateRecord(recordID, payload)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "record": record})
}

// DeleteRecord godoc
// @Summary Delete a record
// @Tags Records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /records/{id} [delete]
// @Security BearerAuth
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRecord(recordID); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record deleted successfully"})
}
