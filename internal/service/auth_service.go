package service

import (
	"errors"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo       *repository.UserRepository
	SiteConfigRepo *repository.SiteConfigRepository
	Config         *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, siteConfigRepo *repository.SiteConfigRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, SiteConfigRepo: siteConfigRepo, Config: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SetupRequest creates the first account during initial setup.
type SetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
	SiteName string `json:"siteName"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) issueToken(user *model.User) (*AuthResponse, error) {
	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.Config.JWT.ExpireTime),
		User:      user,
	}, nil
}

func (s *AuthService) checkIdentifiersFree(email, username string) error {
	if _, err := s.UserRepo.FindByEmail(email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.UserRepo.FindByUsername(username); err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// SetupRequired reports whether the instance still waits for its first admin.
func (s *AuthService) SetupRequired() (bool, error) {
	cfg, err := s.SiteConfigRepo.Get()
	if err != nil {
		return false, err
	}
	return !cfg.IsSetupComplete, nil
}

// Setup creates the super admin account and marks the instance configured.
// It only works once; afterwards it reports a conflict.
func (s *AuthService) Setup(req SetupRequest) (*AuthResponse, error) {
	cfg, err := s.SiteConfigRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg.IsSetupComplete {
		return nil, util.ErrSetupComplete
	}
	if err := s.checkIdentifiersFree(req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:      req.Email,
		Username:   req.Username,
		Password:   hash,
		FullName:   req.FullName,
		Role:       model.SuperAdmin,
		IsActive:   true,
		IsVerified: true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	cfg.IsSetupComplete = true
	if req.SiteName != "" {
		cfg.SiteName = req.SiteName
	}
	if err := s.SiteConfigRepo.Save(cfg); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Register creates a member account, subject to the site's registration toggle.
func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	cfg, err := s.SiteConfigRepo.Get()
	if err != nil {
		return nil, err
	}
	if !cfg.AllowRegistration {
		return nil, util.ErrRegistrationClosed
	}
	if err := s.checkIdentifiersFree(req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
		FullName: req.FullName,
		Role:     model.Member,
		IsActive: true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

// Login verifies credentials and issues a token. A wrong email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, util.ErrAccountDisabled
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *AuthService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

type UpdateProfileRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

func (s *AuthService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

func (s *AuthService) ChangePassword(userID uint, req ChangePasswordRequest) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return util.ErrInvalidCredentials
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.UserRepo.Update(user)
}
