package handler

import (
	"net/http"
	"strconv"

	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordService  *service.RecordService
	patientService *service.PatientService
}

func NewRecordHandler(recordService *service.RecordService, patientService *service.PatientService) *RecordHandler {
	return &RecordHandler{
		recordService:  recordService,
		patientService: patientService,
	}
}

func recordInputFromForm(c *gin.Context) service.RecordInput {
	return service.RecordInput{
		PatientID:                   c.PostForm("patient_id"),
		FollowupDate:                c.PostForm("followup_date"),
		FollowupType:                c.PostForm("followup_type"),
		Symptoms:                    c.PostForm("symptoms"),
		BloodPressure:               c.PostForm("blood_pressure"),
		HeartRate:                   c.PostForm("heart_rate"),
		BodyWeight:                  c.PostForm("body_weight"),
		Height:                      c.PostForm("height"),
		UrineProtein:                c.PostForm("urine_protein"),
		UrineRBC:                    c.PostForm("urine_rbc"),
		UrineProtein24h:             c.PostForm("urine_protein_24h"),
		UrineProteinCreatinineRatio: c.PostForm("urine_protein_creatinine_ratio"),
		SerumCreatinine:             c.PostForm("serum_creatinine"),
		EGFR:                        c.PostForm("egfr"),
		SerumAlbumin:                c.PostForm("serum_albumin"),
		Hemoglobin:                  c.PostForm("hemoglobin"),
		IgALevel:                    c.PostForm("iga_level"),
		Medications:                 c.PostForm("medications"),
		MedicationCompliance:        c.PostForm("medication_compliance"),
		Notes:                       c.PostForm("notes"),
		NextFollowupDate:            c.PostForm("next_followup_date"),
	}
}

// List returns a paginated record listing, most recent visit first. An
// optional ?search= term matches the parent patient's code or name, and
// ?patient_id= restricts the listing to one patient.
func (h *RecordHandler) List(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	var patientID uint
	if raw := c.Query("patient_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			patientID = uint(parsed)
		}
	}

	records, pagination, err := h.recordService.List(search, patientID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"records":    records,
		"pagination": pagination,
		"search":     search,
		"patient_id": patientID,
	})
}

// AddForm answers the record creation form route, supplying the selectable
// patient list
func (h *RecordHandler) AddForm(c *gin.Context) {
	patients, err := h.patientService.ListForSelection()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"record":     nil,
		"patients":   patients,
		"patient_id": c.Query("patient_id"),
	})
}

// Create registers a follow-up visit and redirects to the parent patient
func (h *RecordHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	record, err := h.recordService.Create(recordInputFromForm(c), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/patients/"+strconv.FormatUint(uint64(record.PatientID), 10))
}

// Detail returns a single follow-up record
func (h *RecordHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.recordService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}

// EditForm answers the record edit form route
func (h *RecordHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.recordService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	patients, err := h.patientService.ListForSelection()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"record":     record,
		"patients":   patients,
		"patient_id": record.PatientID,
	})
}

// Update edits an existing record and redirects to its detail view
func (h *RecordHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.recordService.Update(id, recordInputFromForm(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/records/"+strconv.FormatUint(uint64(id), 10))
}

// Delete removes a follow-up record and redirects to the parent patient
func (h *RecordHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	patientID, err := h.recordService.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/patients/"+strconv.FormatUint(uint64(patientID), 10))
}
