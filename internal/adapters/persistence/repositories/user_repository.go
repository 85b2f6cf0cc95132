package repositories

import (
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// UserRepository handles portal account data access. Accounts currently
// have no HTTP surface; the seeder creates the single admin user.
type UserRepository struct {
	users *store.Collection[domain.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{users: s.Users}
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(id int) (domain.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

// GetByUsername gets a user by username. Username uniqueness is not
// enforced by the store; the first match in insertion order wins.
func (r *UserRepository) GetByUsername(username string) (domain.User, error) {
	for _, u := range r.users.List() {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// Create creates a new user and assigns its ID. The password must already
// be hashed by the caller.
func (r *UserRepository) Create(u domain.User) domain.User {
	return r.users.Insert(func(id int) domain.User {
		u.ID = id
		return u
	})
}
