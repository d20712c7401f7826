package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

// Repository keeps state as plain JSON files under a data directory: one file
// per storage slot plus a users.json index. Slot files hold bare JSON arrays,
// readable and editable with any text tool.
type Repository struct {
	dir string
}

type userEntry struct {
	models.User
	PasswordHash []byte `json:"password_hash"`
}

func New(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Repository{dir: dir}, nil
}

// Users

func (r *Repository) CreateUser(ctx context.Context, email, name string, passwordHash []byte) (models.User, error) {
	users, err := r.readUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return models.User{}, repository.ErrEmailTaken
		}
	}
	u := userEntry{
		User: models.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: passwordHash,
	}
	users = append(users, u)
	if err := r.writeUsers(users); err != nil {
		return models.User{}, err
	}
	return u.User, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, []byte, error) {
	users, err := r.readUsers()
	if err != nil {
		return models.User{}, nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u.User, u.PasswordHash, nil
		}
	}
	return models.User{}, nil, repository.ErrNotFound
}

func (r *Repository) GetUser(ctx context.Context, id string) (models.User, error) {
	users, err := r.readUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.User, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

// Collections

func (r *Repository) LoadCollections(ctx context.Context, userID string) (models.Collections, error) {
	var c models.Collections
	if err := r.readSlot(repository.MedicationsSlot(userID), &c.Medications); err != nil {
		return models.Collections{}, err
	}
	if err := r.readSlot(repository.TakenSlot(userID), &c.Taken); err != nil {
		return models.Collections{}, err
	}
	return c, nil
}

func (r *Repository) SaveCollections(ctx context.Context, userID string, c models.Collections) error {
	meds := c.Medications
	if meds == nil {
		meds = []models.Medication{}
	}
	taken := c.Taken
	if taken == nil {
		taken = []models.TakenRecord{}
	}
	if err := r.writeSlot(repository.MedicationsSlot(userID), meds); err != nil {
		return err
	}
	return r.writeSlot(repository.TakenSlot(userID), taken)
}

func (r *Repository) Close() error { return nil }

func (r *Repository) slotPath(key string) string {
	return filepath.Join(r.dir, key+".json")
}

func (r *Repository) readSlot(key string, v any) error {
	b, err := os.ReadFile(r.slotPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode slot %s: %w", key, err)
	}
	return nil
}

func (r *Repository) writeSlot(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(r.slotPath(key), b, 0600)
}

func (r *Repository) readUsers() ([]userEntry, error) {
	var users []userEntry
	b, err := os.ReadFile(filepath.Join(r.dir, "users.json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("decode users index: %w", err)
	}
	return users, nil
}

func (r *Repository) writeUsers(users []userEntry) error {
	b, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, "users.json"), b, 0600)
}
