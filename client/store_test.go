package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"underrated/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeList() []models.Place {
	return []models.Place{
		{ID: "001", Name: "Ziro Valley", City: "Ziro"},
		{ID: "002", Name: "Majuli Island", City: "Majuli"},
	}
}

func TestPlaceStoreLoadFetchesOnce(t *testing.T) {
	var listCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&listCalls, 1)
		json.NewEncoder(w).Encode(placeList())
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Load(context.Background()))

	assert.Equal(t, int32(1), atomic.LoadInt32(&listCalls))
	assert.Len(t, store.Places(), 2)

	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&listCalls))
}

func TestPlaceStoreAddPrepends(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(placeList())
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Place{ID: "003", Name: "Chopta", City: "Chopta"})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	created, err := store.Add(context.Background(), map[string]interface{}{
		"name": "Chopta", "city": "Chopta", "description": "Mini Switzerland",
	})
	require.NoError(t, err)
	assert.Equal(t, "003", created.ID)

	places := store.Places()
	require.Len(t, places, 3)
	assert.Equal(t, "003", places[0].ID)
}

func TestPlaceStoreUpdateReplacesById(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(placeList())
		case http.MethodPut:
			json.NewEncoder(w).Encode(models.Place{ID: "002", Name: "Majuli", City: "Majuli", Verified: true})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	updated, err := store.Update(context.Background(), "002", map[string]interface{}{"verified": true})
	require.NoError(t, err)
	assert.True(t, updated.Verified)

	places := store.Places()
	require.Len(t, places, 2)
	assert.True(t, places[1].Verified)
	assert.Equal(t, "001", places[0].ID)
}

func TestPlaceStoreUpdateNotFoundRefreshes(t *testing.T) {
	var listCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&listCalls, 1)
			json.NewEncoder(w).Encode(placeList()[:1])
		case http.MethodPut:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Place not found"})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	_, err := store.Update(context.Background(), "999", map[string]interface{}{"verified": true})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// the drifted cache was refetched
	assert.Equal(t, int32(2), atomic.LoadInt32(&listCalls))
	assert.Len(t, store.Places(), 1)
}

func TestPlaceStoreDeleteFiltersOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(placeList())
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "Place removed successfully"})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, store.Delete(context.Background(), "001"))

	places := store.Places()
	require.Len(t, places, 1)
	assert.Equal(t, "002", places[0].ID)
}

func TestPlaceStoreDeleteNotFoundIsNoOp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(placeList())
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Place not found"})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	assert.NoError(t, store.Delete(context.Background(), "001"))
	assert.Len(t, store.Places(), 1)
}

func TestPlaceStoreConcurrentDeleteSendsOneRequest(t *testing.T) {
	var deleteCalls int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(placeList())
		case http.MethodDelete:
			atomic.AddInt32(&deleteCalls, 1)
			<-release
			json.NewEncoder(w).Encode(map[string]string{"message": "Place removed successfully"})
		}
	}))
	defer srv.Close()

	store := NewPlaceStore(New(srv.URL))
	require.NoError(t, store.Load(context.Background()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, store.Delete(context.Background(), "001"))
	}()

	// wait for the first delete to be in flight, then double-click
	for atomic.LoadInt32(&deleteCalls) == 0 {
		time.Sleep(time.Millisecond)
	}
	assert.NoError(t, store.Delete(context.Background(), "001"))

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&deleteCalls))
	assert.Len(t, store.Places(), 1)
}
