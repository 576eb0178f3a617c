package handler

import (
	"net/http"
	"strconv"

	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

func patientInputFromForm(c *gin.Context) service.PatientInput {
	return service.PatientInput{
		Name:            c.PostForm("name"),
		Gender:          c.PostForm("gender"),
		BirthDate:       c.PostForm("birth_date"),
		Age:             c.PostForm("age"),
		IDCard:          c.PostForm("id_card"),
		Phone:           c.PostForm("phone"),
		Address:         c.PostForm("address"),
		Diagnosis:       c.PostForm("diagnosis"),
		DiagnosisDate:   c.PostForm("diagnosis_date"),
		InitialSymptoms: c.PostForm("initial_symptoms"),
		Comorbidities:   c.PostForm("comorbidities"),
		FamilyHistory:   c.PostForm("family_history"),
	}
}

// List returns a paginated patient listing, newest first. An optional
// ?search= term matches patient code, name or phone.
func (h *PatientHandler) List(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	patients, pagination, err := h.patientService.List(search, page)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients":   patients,
		"pagination": pagination,
		"search":     search,
	})
}

// AddForm answers the patient creation form route
func (h *PatientHandler) AddForm(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"patient": nil})
}

// Create registers a new patient and redirects to the listing
func (h *PatientHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if _, err := h.patientService.Create(patientInputFromForm(c), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/patients")
}

// Detail returns a patient together with its follow-up records
func (h *PatientHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	patient, records, err := h.patientService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patient": patient,
		"records": records,
	})
}

// EditForm answers the patient edit form route
func (h *PatientHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	patient, err := h.patientService.Find(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"patient": patient})
}

// Update edits an existing patient and redirects to its detail view
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.patientService.Update(id, patientInputFromForm(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/patients/"+strconv.FormatUint(uint64(id), 10))
}

// Delete removes a patient and all of its follow-up records
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.patientService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/patients")
}
