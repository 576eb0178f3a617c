package service

import (
	"strings"
	"time"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/apperr"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) FindUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (r *fakeUserRepo) ListUsers(search string, page, perPage int) ([]models.User, int64, error) {
	var matched []models.User
	for i := len(r.users) - 1; i >= 0; i-- {
		u := r.users[i]
		if search == "" || strings.Contains(u.Username, search) || strings.Contains(u.RealName, search) {
			matched = append(matched, *u)
		}
	}
	return pageSlice(matched, page, perPage), int64(len(matched)), nil
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return apperr.NotFound("user")
}

func (r *fakeUserRepo) DeleteUser(id uint) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("user")
}

func (r *fakeUserRepo) CountUsers() (int64, error) {
	return int64(len(r.users)), nil
}

type fakePatientRepo struct {
	patients []*models.Patient
	nextID   uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{nextID: 1}
}

func (r *fakePatientRepo) GetPatientByID(id uint) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("patient")
}

func (r *fakePatientRepo) GetLastPatient() (*models.Patient, error) {
	if len(r.patients) == 0 {
		return nil, nil
	}
	return r.patients[len(r.patients)-1], nil
}

func (r *fakePatientRepo) ListPatients(search string, page, perPage int) ([]models.Patient, int64, error) {
	var matched []models.Patient
	for i := len(r.patients) - 1; i >= 0; i-- {
		p := r.patients[i]
		phone := ""
		if p.Phone != nil {
			phone = *p.Phone
		}
		if search == "" || strings.Contains(p.PatientID, search) ||
			strings.Contains(p.Name, search) || strings.Contains(phone, search) {
			matched = append(matched, *p)
		}
	}
	return pageSlice(matched, page, perPage), int64(len(matched)), nil
}

func (r *fakePatientRepo) ListPatientsByName() ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePatientRepo) CreatePatient(patient *models.Patient) error {
	patient.ID = r.nextID
	r.nextID++
	r.patients = append(r.patients, patient)
	return nil
}

func (r *fakePatientRepo) UpdatePatient(patient *models.Patient) error {
	for i, p := range r.patients {
		if p.ID == patient.ID {
			r.patients[i] = patient
			return nil
		}
	}
	return apperr.NotFound("patient")
}

func (r *fakePatientRepo) DeletePatient(id uint) error {
	for i, p := range r.patients {
		if p.ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("patient")
}

func (r *fakePatientRepo) CountPatients() (int64, error) {
	return int64(len(r.patients)), nil
}

type fakeRecordRepo struct {
	records []*models.FollowupRecord
	nextID  uint
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{nextID: 1}
}

func (r *fakeRecordRepo) GetRecordByID(id uint) (*models.FollowupRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, apperr.NotFound("follow-up record")
}

func (r *fakeRecordRepo) ListRecords(search string, patientID uint, page, perPage int) ([]models.FollowupRecord, int64, error) {
	var matched []models.FollowupRecord
	for _, rec := range r.records {
		if patientID != 0 && rec.PatientID != patientID {
			continue
		}
		matched = append(matched, *rec)
	}
	return pageSlice(matched, page, perPage), int64(len(matched)), nil
}

func (r *fakeRecordRepo) ListRecordsByPatient(patientID uint) ([]models.FollowupRecord, error) {
	var out []models.FollowupRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) CreateRecord(record *models.FollowupRecord) error {
	record.ID = r.nextID
	r.nextID++
	r.records = append(r.records, record)
	return nil
}

func (r *fakeRecordRepo) UpdateRecord(record *models.FollowupRecord) error {
	for i, rec := range r.records {
		if rec.ID == record.ID {
			r.records[i] = record
			return nil
		}
	}
	return apperr.NotFound("follow-up record")
}

func (r *fakeRecordRepo) DeleteRecord(id uint) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("follow-up record")
}

func (r *fakeRecordRepo) CountRecords() (int64, error) {
	return int64(len(r.records)), nil
}

func (r *fakeRecordRepo) RecentRecords(limit int) ([]models.FollowupRecord, error) {
	var out []models.FollowupRecord
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRecordRepo) UpcomingFollowups(from, to time.Time, limit int) ([]models.FollowupRecord, error) {
	var out []models.FollowupRecord
	for _, rec := range r.records {
		if rec.NextFollowupDate == nil {
			continue
		}
		d := *rec.NextFollowupDate
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, *rec)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSettingRepo struct {
	settings []*models.SystemSetting
	nextID   uint
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{nextID: 1}
}

func (r *fakeSettingRepo) GetSettingByID(id uint) (*models.SystemSetting, error) {
	for _, s := range r.settings {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperr.NotFound("setting")
}

func (r *fakeSettingRepo) FindSettingByKey(key string) (*models.SystemSetting, error) {
	for _, s := range r.settings {
		if s.Key == key {
			return s, nil
		}
	}
	return nil, apperr.NotFound("setting")
}

func (r *fakeSettingRepo) ListSettings() ([]models.SystemSetting, error) {
	var out []models.SystemSetting
	for _, s := range r.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSettingRepo) CreateSetting(setting *models.SystemSetting) error {
	setting.ID = r.nextID
	r.nextID++
	r.settings = append(r.settings, setting)
	return nil
}

func (r *fakeSettingRepo) UpdateSetting(setting *models.SystemSetting) error {
	for i, s := range r.settings {
		if s.ID == setting.ID {
			r.settings[i] = setting
			return nil
		}
	}
	return apperr.NotFound("setting")
}

func (r *fakeSettingRepo) DeleteSetting(id uint) error {
	for i, s := range r.settings {
		if s.ID == id {
			r.settings = append(r.settings[:i], r.settings[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("setting")
}

func pageSlice[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
