package client

import (
	"context"
	"net/http"
	"sync"

	"underrated/models"
)

// PlaceStore keeps an in-memory copy of the place list and patches it after
// each successful mutation instead of refetching. Last write wins; there is
// no cross-client synchronization.
type PlaceStore struct {
	client *Client

	mu       sync.Mutex
	loaded   bool
	places   []models.Place
	inflight map[string]struct{}
}

func NewPlaceStore(c *Client) *PlaceStore {
	return &PlaceStore{
		client:   c,
		inflight: make(map[string]struct{}),
	}
}

// Load fetches the full place list once. Later calls are no-ops; use
// Refresh to refetch.
func (s *PlaceStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// Refresh re-runs the full fetch and replaces the cached list.
func (s *PlaceStore) Refresh(ctx context.Context) error {
	var places []models.Place
	if err := s.client.do(ctx, http.MethodGet, "/api/places", nil, &places); err != nil {
		return err
	}
	s.mu.Lock()
	s.places = places
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Places returns a copy of the cached list.
func (s *PlaceStore) Places() []models.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Place, len(s.places))
	copy(out, s.places)
	return out
}

// Add creates a place and prepends it to the cached list.
func (s *PlaceStore) Add(ctx context.Context, input map[string]interface{}) (models.Place, error) {
	var created models.Place
	if err := s.client.do(ctx, http.MethodPost, "/api/places", input, &created); err != nil {
		return models.Place{}, err
	}
	s.mu.Lock()
	s.places = append([]models.Place{created}, s.places...)
	s.mu.Unlock()
	return created, nil
}

// Update patches a place and replaces the cached entry by id. A 404 from
// the server means the cache has drifted; the store refetches and the
// not-found error is returned.
func (s *PlaceStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Place, error) {
	var updated models.Place
	err := s.client.do(ctx, http.MethodPut, "/api/places/"+id, fields, &updated)
	if err != nil {
		if IsNotFound(err) {
			_ = s.Refresh(ctx)
		}
		return models.Place{}, err
	}
	s.mu.Lock()
	for i := range s.places {
		if s.places[i].ID == id {
			s.places[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes a place and filters it out of the cached list. Concurrent
// deletes for the same id are deduplicated so a double-click issues a single
// request. A 404 means the place is already gone and counts as success.
func (s *PlaceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return nil
	}
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, id)
		s.mu.Unlock()
	}()

	err := s.client.do(ctx, http.MethodDelete, "/api/places/"+id, nil, nil)
	if err != nil && !IsNotFound(err) {
		return err
	}

	s.mu.Lock()
	kept := s.places[:0]
	for _, p := range s.places {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.places = kept
	s.mu.Unlock()
	return nil
}
