package repository

import (
	"context"
	"errors"
	"sync"

	"tourbook/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository keeps accounts in memory. Email uniqueness is the caller's
// job: check FindByEmail before Create.
type UserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

// NewUserRepository numbers the seed accounts from 1 in the order given.
func NewUserRepository(seed ...models.User) *UserRepository {
	r := &UserRepository{nextID: 1}
	for _, user := range seed {
		user.ID = r.nextID
		r.nextID++
		r.users = append(r.users, user)
	}
	return r
}

func (r *UserRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

func (r *UserRepository) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) Update(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
