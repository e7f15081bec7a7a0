package service

import (
	"errors"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/jwt"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Register(name, email, password string, role model.Role) (*model.User, error)
	Login(email, password string) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(name, email, password string, role model.Role) (*model.User, error) {
	if role == "" {
		role = model.RoleStaff
	}
	if !role.Valid() {
		return nil, apperr.Validationf("role must be admin or staff")
	}
	if len(password) < 6 {
		return nil, apperr.Validationf("password must be at least 6 characters")
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		return nil, apperr.Validationf("%s", errs[0])
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	// Email collision surfaces as DuplicateKey via the unique index
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password (bcrypt compare, constant-time)
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue token
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if len(newPassword) < 6 {
		return apperr.Validationf("new password must be at least 6 characters")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.userRepo.UpdatePassword(user.ID, user.Password)
}
