package repository

import (
	"errors"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/apperr"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// FindUserByUsername finds a user by username
func (r *userRepo) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *userRepo) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns a page of users, newest first. An optional search term
// matches username or real name.
func (r *userRepo) ListUsers(search string, page, perPage int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR real_name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&users).Error
	return users, total, err
}

// CreateUser creates a new user
func (r *userRepo) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateUser saves an existing user
func (r *userRepo) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser hard-deletes a user; audit references on other rows become NULL
func (r *userRepo) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// CountUsers returns the total number of user rows
func (r *userRepo) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
