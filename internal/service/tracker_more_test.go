package service

import (
	"context"
	"testing"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
)

// Full lifecycle from the dashboard's point of view: add, take, check today,
// delete, verify the cascade emptied everything.
func TestMedicationLifecycle(t *testing.T) {
	tr, repo, u := newTestTracker(t)
	ctx := context.Background()

	m, err := tr.AddMedication(ctx, CreateMedicationInput{Name: "Aspirin", Dosage: "50mg", Frequency: "Once daily"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.MarkTaken(ctx, m.ID); err != nil {
		t.Fatal(err)
	}
	today := tr.TakenToday()
	if len(today) != 1 || today[0].MedicationID != m.ID {
		t.Fatalf("taken today = %+v, want one record for %s", today, m.ID)
	}

	if err := tr.DeleteMedication(ctx, m.ID); err != nil {
		t.Fatal(err)
	}
	c, err := repo.LoadCollections(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Medications) != 0 || len(c.Taken) != 0 {
		t.Fatalf("cascade left state behind: %+v", c)
	}
	if got := tr.TakenToday(); len(got) != 0 {
		t.Fatalf("taken today after delete = %+v, want empty", got)
	}
}

// Orphaned taken records (possible with externally edited storage) must not
// break reads.
func TestOrphanedTakenRecordsTolerated(t *testing.T) {
	tr, repo, u := newTestTracker(t)
	ctx := context.Background()

	c := models.Collections{
		Medications: []models.Medication{
			{ID: "m1", Name: "Aspirin", Dosage: "50mg", Frequency: "Once daily", UserID: u.ID, CreatedAt: "2025-08-01T08:00:00Z"},
		},
		Taken: []models.TakenRecord{
			{MedicationID: "deleted-elsewhere", TakenAt: "2025-08-30T09:00:00Z", UserID: u.ID},
			{MedicationID: "deleted-elsewhere", TakenAt: "2025-08-25T09:00:00Z", UserID: u.ID},
		},
	}
	if err := repo.SaveCollections(ctx, u.ID, c); err != nil {
		t.Fatal(err)
	}
	if err := tr.SetUser(ctx, u); err != nil {
		t.Fatal(err)
	}

	if got := tr.TakenToday(); len(got) != 1 {
		t.Fatalf("orphan not visible in today's records: %+v", got)
	}
	// The orphan's 08-25 dose must not credit m1's slot for that day.
	if rate := tr.AdherenceRate(7); rate != 0 {
		t.Fatalf("orphan credited an existing medication: %d", rate)
	}
	if tr.IsTakenToday("m1") {
		t.Fatal("orphan marked m1 as taken")
	}
}

// Medications are listed in creation order regardless of insertion quirks.
func TestMedicationsOrdering(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	first, _ := tr.AddMedication(ctx, CreateMedicationInput{Name: "A", Dosage: "1mg", Frequency: "Weekly"})
	second, _ := tr.AddMedication(ctx, CreateMedicationInput{Name: "B", Dosage: "2mg", Frequency: "Weekly"})
	got := tr.Medications()
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", got)
	}
}
