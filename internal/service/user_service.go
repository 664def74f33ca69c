package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/model"
	"github.com/lshigami/Formery/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyName          = errors.New("name cannot be empty")
)

// UserService covers signup, login and the profile screen, including the
// form/response counters shown there.
type UserService interface {
	Signup(req dto.SignupRequest) (*model.User, error)
	Login(req dto.LoginRequest) (*model.User, error)
	GetProfile(userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	userRepo     repository.UserRepository
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	formRepo repository.FormRepository,
	responseRepo repository.ResponseRepository,
) UserService {
	return &userService{userRepo: userRepo, formRepo: formRepo, responseRepo: responseRepo}
}

func (s *userService) Signup(req dto.SignupRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         username,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Signup: repository create failed")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Str("username", username).Uint("userID", user.ID).Msg("New user signed up")
	return &user, nil
}

func (s *userService) Login(req dto.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return s.profileOf(user)
}

func (s *userService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		user.Name = name
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: repository update failed")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.profileOf(user)
}

func (s *userService) profileOf(user *model.User) (*dto.ProfileResponse, error) {
	formCount, err := s.formRepo.CountByUser(user.ID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", user.ID).Msg("profileOf: form count unavailable")
	}
	responseCount, err := s.responseRepo.CountByFormOwner(user.ID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", user.ID).Msg("profileOf: response count unavailable")
	}
	return &dto.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Email:          user.Email,
		ProfileImage:   user.ProfileImage,
		CreatedAt:      user.CreatedAt,
		FormCount:      formCount,
		TotalResponses: responseCount,
	}, nil
}
