package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/identity"
	"github.com/gympro/backend/internal/domain/shared"
)

// UserService handles staff account management
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new staff account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this username already exists")
	}

	user, err := identity.NewUser(req.Username, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a staff account by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves staff accounts with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "username",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	var users []identity.User
	var err error
	if filter.Role != "" {
		users, err = s.userRepo.FindByRole(ctx, identity.Role(filter.Role), domainFilter)
	} else {
		users, err = s.userRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Update updates a staff account
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if err := user.SetDisplayName(*req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		if err := user.SetRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ResetPassword sets a new password without the old one (admin action)
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Deactivate disables a staff account. The last remaining admin
// cannot be deactivated.
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role.IsAdmin() {
		admins, err := s.userRepo.CountByRole(ctx, identity.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, shared.NewDomainError("LAST_ADMIN", "Cannot deactivate the last admin account")
		}
	}

	if err := user.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Activate re-enables a staff account
func (s *UserService) Activate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Activate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a staff account. The last remaining admin cannot be removed.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role.IsAdmin() {
		admins, err := s.userRepo.CountByRole(ctx, identity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return shared.NewDomainError("LAST_ADMIN", "Cannot delete the last admin account")
		}
	}

	return s.userRepo.Delete(ctx, userID)
}
