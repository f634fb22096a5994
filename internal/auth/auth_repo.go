package auth

import (
	"strings"
	"sync"
	"time"
)

// User is a fabricated account. Nothing here is real identity: the table
// lives in process memory and vanishes with it.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type Repository interface {
	Create(u User) (User, bool)
	GetByEmail(email string) (User, bool)
	GetByID(id string) (User, bool)
}

type memoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]User
	byID    map[string]User
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byEmail: make(map[string]User),
		byID:    make(map[string]User),
	}
}

// Create stores the user; the second return is false when the email is
// already taken.
func (r *memoryRepository) Create(u User) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return User{}, false
	}

	r.byEmail[key] = u
	r.byID[u.ID] = u
	return u, true
}

func (r *memoryRepository) GetByEmail(email string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	return u, ok
}

func (r *memoryRepository) GetByID(id string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u, ok
}
