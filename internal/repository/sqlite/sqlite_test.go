package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

func TestUsers(t *testing.T) {
	repo, err := New("file:repo_users?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, "u@example.com", "Test User", []byte("h"))
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.Name != "Test User" {
		t.Fatalf("bad user: %+v", u)
	}
	got, hash, err := repo.GetUserByEmail(ctx, "u@example.com")
	if err != nil || got.ID != u.ID || string(hash) != "h" {
		t.Fatalf("get by email: %v", err)
	}
	if _, err := repo.GetUser(ctx, u.ID); err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if _, err := repo.CreateUser(ctx, "u@example.com", "Other", []byte("h2")); !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("duplicate email: want ErrEmailTaken, got %v", err)
	}
	if _, _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing email: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetUser(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing id: want ErrNotFound, got %v", err)
	}
}

func TestCollectionsRoundTrip(t *testing.T) {
	repo, err := New("file:repo_collections?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	// A user with nothing saved loads empty collections.
	c, err := repo.LoadCollections(ctx, "fresh")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Medications) != 0 || len(c.Taken) != 0 {
		t.Fatalf("fresh user has state: %+v", c)
	}

	in := models.Collections{
		Medications: []models.Medication{
			{ID: "m1", Name: "Aspirin", Dosage: "50mg", Frequency: "Once daily", UserID: "u1", CreatedAt: "2025-08-01T08:00:00Z"},
		},
		Taken: []models.TakenRecord{
			{MedicationID: "m1", TakenAt: "2025-08-02T09:00:00Z", UserID: "u1"},
		},
	}
	if err := repo.SaveCollections(ctx, "u1", in); err != nil {
		t.Fatal(err)
	}
	out, err := repo.LoadCollections(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Medications) != 1 || out.Medications[0] != in.Medications[0] {
		t.Fatalf("medications: %+v", out.Medications)
	}
	if len(out.Taken) != 1 || out.Taken[0] != in.Taken[0] {
		t.Fatalf("taken: %+v", out.Taken)
	}

	// Saves overwrite the full snapshot.
	if err := repo.SaveCollections(ctx, "u1", models.Collections{}); err != nil {
		t.Fatal(err)
	}
	out, err = repo.LoadCollections(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Medications) != 0 || len(out.Taken) != 0 {
		t.Fatalf("overwrite left state: %+v", out)
	}
}

func TestCollectionsAreNamespacedPerUser(t *testing.T) {
	repo, err := New("file:repo_namespace?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	if err := repo.SaveCollections(ctx, "u1", models.Collections{
		Medications: []models.Medication{{ID: "m1", Name: "A", Dosage: "1mg", Frequency: "Weekly", UserID: "u1", CreatedAt: "2025-08-01T08:00:00Z"}},
	}); err != nil {
		t.Fatal(err)
	}
	c, err := repo.LoadCollections(ctx, "u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Medications) != 0 {
		t.Fatalf("u2 sees u1 state: %+v", c)
	}
}
