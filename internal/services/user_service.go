package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
)

// RegisterRequest carries the fields accepted at registration
type RegisterRequest struct {
	Username string
	Password string
	Email    string
	Phone    string
	Address  string
}

type UserService interface {
	// Register creates a regular user; duplicate usernames fail with an integrity error
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	// Authenticate returns the user when the password matches
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	// UpdateProfile patches the contact fields of a user
	UpdateProfile(ctx context.Context, username string, patch models.DTO) (*models.User, error)
}

type userService struct {
	store *dao.Store
}

func NewUserService(store *dao.Store) UserService {
	return &userService{store: store}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, models.NewValidationError("username is required")
	}
	if req.Password == "" {
		return nil, models.NewValidationError("password is required")
	}

	user := &models.User{
		Username: username,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     models.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		if _, err := tx.Users.FindByUsername(ctx, username); err == nil {
			return models.NewIntegrityError("username '"+username+"' is already taken", nil)
		} else if !models.IsKind(err, models.KindNotFound) {
			return err
		}
		return tx.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	log.WithField("username", user.Username).Info("User registered")
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if err != nil {
		if models.IsKind(err, models.KindNotFound) {
			return nil, models.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.store.Users.FindByUsername(ctx, username)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.store.Users.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, username string, patch models.DTO) (*models.User, error) {
	allowed := models.DTO{}
	for _, key := range []string{"email", "phone", "address"} {
		if value, ok := patch[key]; ok {
			allowed[key] = value
		}
	}

	var updated *models.User
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		user, err := tx.Users.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if err := user.ApplyDTO(allowed); err != nil {
			return err
		}
		if err := tx.Users.Update(ctx, user.ID, user); err != nil {
			return err
		}
		updated, err = tx.Users.FindByID(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
