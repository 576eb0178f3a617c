package service

import (
	"strings"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
	"ckd-followup-backend/pkg/utils"
)

// defaultStaffPassword is used when an admin creates an account without
// supplying a password
const defaultStaffPassword = "123456"

type StaffService struct {
	userRepo repository.UserRepository
}

func NewStaffService(userRepo repository.UserRepository) *StaffService {
	return &StaffService{userRepo: userRepo}
}

// StaffInput carries the raw form values of a staff create/edit submission
type StaffInput struct {
	Username   string
	Password   string
	RealName   string
	Role       string
	Department string
	Phone      string
	Email      string
	IsActive   string
}

func (s *StaffService) usernameTaken(username string, excludeID uint) (bool, error) {
	existing, err := s.userRepo.FindUserByUsername(username)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

// applyInput validates and copies form values onto a user row, leaving the
// password hash untouched
func applyStaffInput(user *models.User, input StaffInput) error {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return apperr.Validation("username is required")
	}
	if strings.TrimSpace(input.RealName) == "" {
		return apperr.Validation("real name is required")
	}

	role := models.RoleStaff
	if input.Role != "" {
		parsed, ok := models.ParseRole(input.Role)
		if !ok {
			return apperr.Validation("unknown role")
		}
		role = parsed
	}

	user.Username = username
	user.RealName = strings.TrimSpace(input.RealName)
	user.Role = role
	user.Department = optionalString(input.Department)
	user.Phone = optionalString(input.Phone)
	user.Email = optionalString(input.Email)
	return nil
}

// List returns one page of staff accounts matching the optional search term
func (s *StaffService) List(search string, page int) ([]models.User, Pagination, error) {
	page = normalizePage(page)
	users, total, err := s.userRepo.ListUsers(search, page, DefaultPerPage)
	if err != nil {
		return nil, Pagination{}, apperr.Internal("failed to fetch staff", err)
	}
	return users, paginate(page, total), nil
}

// Create registers a new staff account. Duplicate usernames are rejected
// before the insert.
func (s *StaffService) Create(input StaffInput) (*models.User, error) {
	user := &models.User{IsActive: true}
	if err := applyStaffInput(user, input); err != nil {
		return nil, err
	}

	taken, err := s.usernameTaken(user.Username, 0)
	if err != nil {
		return nil, apperr.Internal("failed to check username", err)
	}
	if taken {
		return nil, apperr.Conflict("username already exists")
	}

	password := input.Password
	if password == "" {
		password = defaultStaffPassword
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, apperr.Internal("failed to create staff account", err)
	}
	return user, nil
}

// Update edits an existing staff account. A rename that collides with a
// different user is rejected; the password is only rehashed when a new one
// is supplied.
func (s *StaffService) Update(id uint, input StaffInput) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	newUsername := strings.TrimSpace(input.Username)
	if newUsername != "" && newUsername != user.Username {
		taken, err := s.usernameTaken(newUsername, id)
		if err != nil {
			return nil, apperr.Internal("failed to check username", err)
		}
		if taken {
			return nil, apperr.Conflict("username already exists")
		}
	}

	if err := applyStaffInput(user, input); err != nil {
		return nil, err
	}
	user.IsActive = input.IsActive == "on"

	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, apperr.Internal("failed to hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, apperr.Internal("failed to update staff account", err)
	}
	return user, nil
}

// Get returns a single staff account
func (s *StaffService) Get(id uint) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}

// ErrSelfDelete is returned when an admin tries to delete their own account
var ErrSelfDelete = apperr.Validation("cannot delete your own account")

// Delete removes a staff account, refusing to delete the acting admin
func (s *StaffService) Delete(id, actingUserID uint) error {
	if id == actingUserID {
		return ErrSelfDelete
	}
	if _, err := s.userRepo.GetUserByID(id); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(id); err != nil {
		return apperr.Internal("failed to delete staff account", err)
	}
	return nil
}
