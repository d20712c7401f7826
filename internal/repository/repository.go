package repository

import (
	"context"
	"io"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
)

// Repository is the persistence port. Collections are loaded and saved whole:
// the backends keep two JSON slots per user (medications and taken records),
// and every save overwrites both slots with the current snapshot.
type Repository interface {
	CreateUser(ctx context.Context, email, name string, passwordHash []byte) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, []byte, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	LoadCollections(ctx context.Context, userID string) (models.Collections, error)
	SaveCollections(ctx context.Context, userID string, c models.Collections) error

	io.Closer
}

// Slot keys, one pair per user. Backends use these verbatim so data moved
// between backends stays addressable.
func MedicationsSlot(userID string) string { return "medications_" + userID }
func TakenSlot(userID string) string      { return "medications_taken_" + userID }
