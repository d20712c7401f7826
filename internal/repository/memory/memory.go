package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

// Repository is a map-backed backend used in tests.
type Repository struct {
	mu     sync.RWMutex
	users  map[string]userEntry // by id
	byMail map[string]string    // email -> id
	slots  map[string]models.Collections
}

type userEntry struct {
	user models.User
	hash []byte
}

func New() *Repository {
	return &Repository{
		users:  make(map[string]userEntry),
		byMail: make(map[string]string),
		slots:  make(map[string]models.Collections),
	}
}

func (r *Repository) CreateUser(ctx context.Context, email, name string, passwordHash []byte) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byMail[email]; ok {
		return models.User{}, repository.ErrEmailTaken
	}
	u := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.users[u.ID] = userEntry{user: u, hash: passwordHash}
	r.byMail[email] = u.ID
	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, []byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byMail[email]
	if !ok {
		return models.User{}, nil, repository.ErrNotFound
	}
	e := r.users[id]
	return e.user, e.hash, nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return e.user, nil
}

func (r *Repository) LoadCollections(ctx context.Context, userID string) (models.Collections, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.slots[userID]
	out := models.Collections{
		Medications: append([]models.Medication(nil), c.Medications...),
		Taken:       append([]models.TakenRecord(nil), c.Taken...),
	}
	return out, nil
}

func (r *Repository) SaveCollections(ctx context.Context, userID string, c models.Collections) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[userID] = models.Collections{
		Medications: append([]models.Medication(nil), c.Medications...),
		Taken:       append([]models.TakenRecord(nil), c.Taken...),
	}
	return nil
}

func (r *Repository) Close() error { return nil }
