package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

// Repository is the default storage backend. Users live in a regular table;
// the medication and taken-record collections are stored as JSON blobs in a
// key-value slot table, one pair of slots per user.
type Repository struct {
	db *sql.DB
}

func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash BLOB NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

// Users

func (r *Repository) CreateUser(ctx context.Context, email, name string, passwordHash []byte) (models.User, error) {
	var exists string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, email).Scan(&exists)
	if err == nil {
		return models.User{}, repository.ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `INSERT INTO users(id,email,name,password_hash,created_at) VALUES(?,?,?,?,?)`,
		id, email, name, passwordHash, now)
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: id, Email: email, Name: name, CreatedAt: now}, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, []byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id,email,name,password_hash,created_at FROM users WHERE email = ?`, email)
	var u models.User
	var hash []byte
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &hash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, nil, repository.ErrNotFound
		}
		return models.User{}, nil, err
	}
	return u, hash, nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id,email,name,created_at FROM users WHERE id = ?`, id)
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// Collections

func (r *Repository) LoadCollections(ctx context.Context, userID string) (models.Collections, error) {
	var c models.Collections
	meds, err := r.loadSlot(ctx, repository.MedicationsSlot(userID))
	if err != nil {
		return models.Collections{}, err
	}
	if meds != nil {
		if err := json.Unmarshal(meds, &c.Medications); err != nil {
			return models.Collections{}, fmt.Errorf("decode medications slot: %w", err)
		}
	}
	taken, err := r.loadSlot(ctx, repository.TakenSlot(userID))
	if err != nil {
		return models.Collections{}, err
	}
	if taken != nil {
		if err := json.Unmarshal(taken, &c.Taken); err != nil {
			return models.Collections{}, fmt.Errorf("decode taken slot: %w", err)
		}
	}
	return c, nil
}

func (r *Repository) SaveCollections(ctx context.Context, userID string, c models.Collections) error {
	medsJSON, err := json.Marshal(emptyIfNilMeds(c.Medications))
	if err != nil {
		return err
	}
	takenJSON, err := json.Marshal(emptyIfNilTaken(c.Taken))
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, s := range []struct {
		key   string
		value []byte
	}{
		{repository.MedicationsSlot(userID), medsJSON},
		{repository.TakenSlot(userID), takenJSON},
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO slots(key, value, updated_at) VALUES(?,?,?)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
		`, s.key, s.value, now); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) loadSlot(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *Repository) Close() error { return r.db.Close() }

func emptyIfNilMeds(m []models.Medication) []models.Medication {
	if m == nil {
		return []models.Medication{}
	}
	return m
}

func emptyIfNilTaken(t []models.TakenRecord) []models.TakenRecord {
	if t == nil {
		return []models.TakenRecord{}
	}
	return t
}
