package service

import (
	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
	"ckd-followup-backend/pkg/utils"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// LoginResult carries the signed session token and the user it identifies
type LoginResult struct {
	Token string       `json:"-"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	RealName string      `json:"real_name"`
	Role     models.Role `json:"role"`
}

// Login authenticates a username/password pair. Unknown users, wrong
// passwords and disabled accounts all fail with the same message.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	user, err := s.userRepo.FindUserByUsername(username)
	if err != nil {
		return nil, apperr.Unauthorized("invalid username or password, or account disabled")
	}

	if !utils.ComparePassword(user.PasswordHash, password) || !user.IsActive {
		return nil, apperr.Unauthorized("invalid username or password, or account disabled")
	}

	token, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to create session", err)
	}

	return &LoginResult{
		Token: token,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			RealName: user.RealName,
			Role:     user.Role,
		},
	}, nil
}
