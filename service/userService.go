package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/siherrmann/contentManager/model"

	"github.com/google/uuid"
)

// UserServiceFunctions defines the interface for user operations.
type UserServiceFunctions interface {
	InsertUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id int, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
	SelectUser(ctx context.Context, id int) (*model.User, error)
	SelectAllUsers(ctx context.Context) ([]*model.User, error)
}

// UserService keeps users in memory. It is safe for concurrent use.
type UserService struct {
	mu     sync.RWMutex
	users  map[int]*model.User
	nextID int
	now    func() time.Time
	logger *slog.Logger
}

func NewUserService(logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  map[int]*model.User{},
		nextID: 1,
		now:    time.Now,
		logger: logger,
	}
}

// InsertUser stores a new user. Role defaults to user and status to active.
func (s *UserService) InsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	newUser := &model.User{
		Username:  strings.TrimSpace(user.Username),
		Email:     strings.TrimSpace(user.Email),
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
	if newUser.Role == "" {
		newUser.Role = model.ROLE_USER
	}
	if newUser.Status == "" {
		newUser.Status = model.USER_STATUS_ACTIVE
	}
	if err := validateUser(newUser); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(newUser.Username, 0) {
		return nil, conflict("username %q already exists", newUser.Username)
	}

	newUser.ID = s.nextID
	newUser.RID = uuid.New()
	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = s.now()
	}
	s.nextID++
	s.users[newUser.ID] = newUser

	s.logger.Debug("Inserted user", "id", newUser.ID, "username", newUser.Username)

	return cloneUser(newUser), nil
}

// UpdateUser replaces the editable fields of the user with id.
func (s *UserService) UpdateUser(ctx context.Context, id int, user *model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}

	updated := cloneUser(existing)
	updated.Username = strings.TrimSpace(user.Username)
	updated.Email = strings.TrimSpace(user.Email)
	if user.Role != "" {
		updated.Role = user.Role
	}
	if user.Status != "" {
		updated.Status = user.Status
	}
	if err := validateUser(updated); err != nil {
		return nil, err
	}
	if s.usernameTaken(updated.Username, id) {
		return nil, conflict("username %q already exists", updated.Username)
	}

	s.users[id] = updated

	return cloneUser(updated), nil
}

// DeleteUser removes the user with id. Admins cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return notFound("user", id)
	}
	if user.Role == model.ROLE_ADMIN {
		return conflict("admin user %q cannot be deleted", user.Username)
	}

	delete(s.users, id)
	return nil
}

func (s *UserService) SelectUser(ctx context.Context, id int) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return cloneUser(user), nil
}

// SelectAllUsers returns all users ordered by id.
func (s *UserService) SelectAllUsers(ctx context.Context) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	slices.SortFunc(users, func(a, b *model.User) int {
		return a.ID - b.ID
	})
	return users, nil
}

func (s *UserService) usernameTaken(username string, exceptID int) bool {
	for id, user := range s.users {
		if id != exceptID && strings.EqualFold(user.Username, username) {
			return true
		}
	}
	return false
}

func validateUser(user *model.User) error {
	if user.Username == "" {
		return invalid("username is required")
	}
	if !strings.Contains(user.Email, "@") {
		return invalid("email %q is not valid", user.Email)
	}
	if !model.IsValidUserRole(user.Role) {
		return invalid("unknown role %q", user.Role)
	}
	if !model.IsValidUserStatus(user.Status) {
		return invalid("unknown status %q", user.Status)
	}
	return nil
}

func cloneUser(user *model.User) *model.User {
	clone := *user
	if user.LastLogin != nil {
		lastLogin := *user.LastLogin
		clone.LastLogin = &lastLogin
	}
	return &clone
}
