package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

var (
	// ErrUnauthenticated is returned by every mutating operation invoked
	// without an active user.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrMedicationNotFound targets an id absent from the collection.
	ErrMedicationNotFound = errors.New("medication not found")

	// ErrAlreadyTakenToday is the once-per-day guard. Callers should present
	// it as a notice, not a fault.
	ErrAlreadyTakenToday = errors.New("medication already taken today")
)

const dayLayout = "2006-01-02"

// TrackerService owns the two in-memory collections for the active user and
// keeps them synchronized with storage: every mutation saves the full
// snapshot before returning.
type TrackerService struct {
	repo repository.Repository
	now  func() time.Time

	user *models.User
	c    models.Collections
}

func NewTracker(repo repository.Repository) *TrackerService {
	return &TrackerService{repo: repo, now: time.Now}
}

// SetClock overrides the wall clock. Tests use it to pin "today".
func (s *TrackerService) SetClock(now func() time.Time) { s.now = now }

// SetUser activates a user and loads their collections from storage.
func (s *TrackerService) SetUser(ctx context.Context, u models.User) error {
	c, err := s.repo.LoadCollections(ctx, u.ID)
	if err != nil {
		return err
	}
	s.user = &u
	s.c = c
	return nil
}

type CreateMedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
}

// UpdateMedicationInput is a partial update: nil fields keep their value.
type UpdateMedicationInput struct {
	Name      *string
	Dosage    *string
	Frequency *string
}

func (s *TrackerService) AddMedication(ctx context.Context, in CreateMedicationInput) (models.Medication, error) {
	if s.user == nil {
		return models.Medication{}, ErrUnauthenticated
	}
	m := models.Medication{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		UserID:    s.user.ID,
		CreatedAt: s.timestamp(),
	}
	s.c.Medications = append(s.c.Medications, m)
	if err := s.persist(ctx); err != nil {
		return models.Medication{}, err
	}
	return m, nil
}

func (s *TrackerService) UpdateMedication(ctx context.Context, id string, in UpdateMedicationInput) (models.Medication, error) {
	if s.user == nil {
		return models.Medication{}, ErrUnauthenticated
	}
	idx := -1
	for i, m := range s.c.Medications {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Medication{}, ErrMedicationNotFound
	}
	m := s.c.Medications[idx]
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Dosage != nil {
		m.Dosage = *in.Dosage
	}
	if in.Frequency != nil {
		m.Frequency = *in.Frequency
	}
	s.c.Medications[idx] = m
	if err := s.persist(ctx); err != nil {
		return models.Medication{}, err
	}
	return m, nil
}

// DeleteMedication removes the medication and cascades to its taken records.
// A missing id is a no-op, and a second delete of the same id is too.
func (s *TrackerService) DeleteMedication(ctx context.Context, id string) error {
	if s.user == nil {
		return ErrUnauthenticated
	}
	meds := s.c.Medications[:0]
	for _, m := range s.c.Medications {
		if m.ID != id {
			meds = append(meds, m)
		}
	}
	s.c.Medications = meds

	taken := s.c.Taken[:0]
	for _, t := range s.c.Taken {
		if t.MedicationID != id {
			taken = append(taken, t)
		}
	}
	s.c.Taken = taken

	return s.persist(ctx)
}

// MarkTaken appends a taken record stamped with the current time, guarded to
// one record per medication per calendar day.
func (s *TrackerService) MarkTaken(ctx context.Context, medicationID string) (models.TakenRecord, error) {
	if s.user == nil {
		return models.TakenRecord{}, ErrUnauthenticated
	}
	today := s.today()
	for _, t := range s.c.Taken {
		if t.MedicationID == medicationID && models.DatePrefix(t.TakenAt, today) {
			return models.TakenRecord{}, ErrAlreadyTakenToday
		}
	}
	rec := models.TakenRecord{
		MedicationID: medicationID,
		TakenAt:      s.timestamp(),
		UserID:       s.user.ID,
	}
	s.c.Taken = append(s.c.Taken, rec)
	if err := s.persist(ctx); err != nil {
		return models.TakenRecord{}, err
	}
	return rec, nil
}

// Medications returns the collection ordered by creation time.
func (s *TrackerService) Medications() []models.Medication {
	out := append([]models.Medication(nil), s.c.Medications...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// TakenToday returns the records whose timestamp falls on the current
// calendar date.
func (s *TrackerService) TakenToday() []models.TakenRecord {
	today := s.today()
	var out []models.TakenRecord
	for _, t := range s.c.Taken {
		if models.DatePrefix(t.TakenAt, today) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TrackerService) IsTakenToday(medicationID string) bool {
	today := s.today()
	for _, t := range s.c.Taken {
		if t.MedicationID == medicationID && models.DatePrefix(t.TakenAt, today) {
			return true
		}
	}
	return false
}

// TodayProgress returns how many doses were recorded today against the
// number of tracked medications.
func (s *TrackerService) TodayProgress() (taken, total int) {
	return len(s.TakenToday()), len(s.c.Medications)
}

// AdherenceRate reports the percentage of expected doses recorded over the
// `days` calendar days ending yesterday: each medication on each day of the
// window is one slot, satisfied when that medication has a record on that
// day. Returns 0 when no medications are tracked.
func (s *TrackerService) AdherenceRate(days int) int {
	if days <= 0 {
		days = 7
	}
	if len(s.c.Medications) == 0 {
		return 0
	}
	start := s.now().UTC().AddDate(0, 0, -days)
	total, taken := 0, 0
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(dayLayout)
		for _, m := range s.c.Medications {
			total++
			if s.takenOn(m.ID, day) {
				taken++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(taken) / float64(total) * 100))
}

func (s *TrackerService) takenOn(medicationID, day string) bool {
	for _, t := range s.c.Taken {
		if t.MedicationID == medicationID && models.DatePrefix(t.TakenAt, day) {
			return true
		}
	}
	return false
}

func (s *TrackerService) persist(ctx context.Context) error {
	return s.repo.SaveCollections(ctx, s.user.ID, s.c)
}

func (s *TrackerService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *TrackerService) today() string {
	return s.now().UTC().Format(dayLayout)
}
