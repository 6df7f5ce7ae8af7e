package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"medha-admin/models"
)

// MemoryStore keeps registrants in insertion order behind a mutex. It backs
// local runs without a DATABASE_URL and the handler/console tests.
type MemoryStore struct {
	mu          sync.Mutex
	registrants []models.Registrant
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add inserts a registrant, assigning an id when none is set, and returns
// the stored document. It stands in for the out-of-scope registration flow.
func (s *MemoryStore) Add(r models.Registrant) models.Registrant {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.EventDetails = r.EventDetails.Clone()
	s.registrants = append(s.registrants, r)
	return copyRegistrant(r)
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Registrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Registrant, 0, len(s.registrants))
	for _, r := range s.registrants {
		out = append(out, copyRegistrant(r))
	}
	return out, nil
}

func (s *MemoryStore) ListPage(ctx context.Context, page, limit int) ([]models.Registrant, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := (page - 1) * limit
	if start >= len(s.registrants) {
		return []models.Registrant{}, nil
	}
	end := start + limit
	if end > len(s.registrants) {
		end = len(s.registrants)
	}

	out := make([]models.Registrant, 0, end-start)
	for _, r := range s.registrants[start:end] {
		out = append(out, copyRegistrant(r))
	}
	return out, nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, id string, req models.UpdateRegistrantRequest) (models.Registrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registrants {
		if s.registrants[i].ID != id {
			continue
		}
		if req.Name != "" {
			s.registrants[i].Name = req.Name
		}
		if req.Phone != "" {
			s.registrants[i].Phone = req.Phone
		}
		if req.CollegeName != "" {
			s.registrants[i].CollegeName = req.CollegeName
		}
		if req.Course != "" {
			s.registrants[i].Course = req.Course
		}
		if req.EventDetails != nil {
			s.registrants[i].EventDetails = req.EventDetails.Clone()
		}
		return copyRegistrant(s.registrants[i]), nil
	}
	return models.Registrant{}, ErrNotFound
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registrants {
		if s.registrants[i].ID == id {
			s.registrants = append(s.registrants[:i], s.registrants[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func copyRegistrant(r models.Registrant) models.Registrant {
	r.EventDetails = r.EventDetails.Clone()
	return r
}
