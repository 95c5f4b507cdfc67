package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type CreateUserRequest struct {
	Email    string         `json:"email" binding:"required,email"`
	Username string         `json:"username" binding:"required,min=3,max=50"`
	Password string         `json:"password" binding:"required,min=8"`
	FullName string         `json:"fullName"`
	Role     model.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	FullName *string         `json:"fullName"`
	Role     *model.UserRole `json:"role"`
	IsActive *bool           `json:"isActive"`
}

func validRole(role model.UserRole) bool {
	switch role {
	case model.SuperAdmin, model.Admin, model.Member:
		return true
	}
	return false
}

// canAssign enforces the escalation rule: only a super admin may grant or
// revoke the admin and super_admin roles.
func canAssign(actor model.UserRole, target model.UserRole) bool {
	if target == model.Member {
		return true
	}
	return actor == model.SuperAdmin
}

func (s *UserService) ListUsers(page, limit int, role model.UserRole, search string) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, role, search)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) CreateUser(actorRole model.UserRole, req CreateUserRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.Member
	}
	if !validRole(role) {
		return nil, util.NewValidationError("role", "unknown role %q", role)
	}
	if !canAssign(actorRole, role) {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	}
	if _, err := s.UserRepo.FindByUsername(req.Username); err == nil {
		return nil, util.ErrUsernameTaken
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
		Role:     role,
		IsActive: true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(actorID uint, actorRole model.UserRole, id uint, req UpdateUserRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// only a super admin may touch another admin's account
	if user.IsAdminOrAbove() && actorRole != model.SuperAdmin && actorID != user.ID {
		return nil, util.ErrPermissionDenied
	}

	if req.Role != nil && *req.Role != user.Role {
		if !validRole(*req.Role) {
			return nil, util.NewValidationError("role", "unknown role %q", *req.Role)
		}
		if !canAssign(actorRole, *req.Role) || !canAssign(actorRole, user.Role) {
			return nil, util.ErrPermissionDenied
		}
		if actorID == user.ID {
			return nil, util.NewValidationError("role", "cannot change your own role")
		}
		user.Role = *req.Role
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		if actorID == user.ID && !*req.IsActive {
			return nil, util.NewValidationError("isActive", "cannot deactivate your own account")
		}
		user.IsActive = *req.IsActive
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(actorID uint, actorRole model.UserRole, id uint) error {
	if actorID == id {
		return util.ErrCannotDeleteSelf
	}
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user.IsAdminOrAbove() && actorRole != model.SuperAdmin {
		return util.ErrPermissionDenied
	}
	return s.UserRepo.Delete(id)
}
