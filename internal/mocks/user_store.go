package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MockHashPrefix is prepended to plaintext passwords by MockUserStore in
// place of a real hash.
const MockHashPrefix = "hashed:"

// MockUserStore implements store.UserStore for testing.
//
// Without function overrides it behaves like a small in-memory store keyed by
// ID: usernames are unique, IDs are assigned sequentially and passwords are
// "hashed" by prefixing them with MockHashPrefix.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFn  func(ctx context.Context, username string) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	UsernameExistsFn func(ctx context.Context, username string) (bool, error)
	UpdateFn         func(ctx context.Context, user *domain.User) error

	// Errors returned by the default implementation when set
	CreateError error
	GetError    error
	UpdateError error

	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

// AddUser stores a copy of user as-is (no hashing) and returns its ID.
// A zero ID is replaced with the next sequential ID.
func (m *MockUserStore) AddUser(user *domain.User) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	if user.ID == 0 {
		user.ID = m.nextID
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	u := *user
	m.users[u.ID] = &u
	return u.ID
}

func (m *MockUserStore) init() {
	if m.users == nil {
		m.users = make(map[int64]*domain.User)
		m.nextID = 1
	}
}

func (m *MockUserStore) find(match func(*domain.User) bool) (*domain.User, error) {
	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if match(m.users[id]) {
			u := *m.users[id]
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	user.ID = m.nextID
	m.nextID++
	user.HashedPassword = MockHashPrefix + user.Password
	user.Password = ""
	u := *user
	m.users[u.ID] = &u
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u *domain.User) bool { return u.ID == id })
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u *domain.User) bool { return u.Username == username })
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u *domain.User) bool { return u.Email == email })
}

// UsernameExists implements the UserStore interface
func (m *MockUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.UsernameExistsFn != nil {
		return m.UsernameExistsFn(ctx, username)
	}
	if m.GetError != nil {
		return false, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.find(func(u *domain.User) bool { return u.Username == username })
	return err == nil, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	if m.UpdateError != nil {
		return m.UpdateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	if _, ok := m.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	if user.Password != "" {
		user.HashedPassword = MockHashPrefix + user.Password
		user.Password = ""
	}
	u := *user
	m.users[u.ID] = &u
	return nil
}
