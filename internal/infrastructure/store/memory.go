package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

// DatasetStore holds the live dataset of each interactive session. A
// session owns exactly one dataset value; regenerate and upload replace it
// wholesale, nothing mutates it in place. "No data yet" is an explicit
// miss, not a nil dataset.
type DatasetStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*storeItem
}

type storeItem struct {
	dataset    *entities.Dataset
	expireTime time.Time
}

// NewDatasetStore creates a store whose sessions expire after ttl
func NewDatasetStore(ttl time.Duration) *DatasetStore {
	store := &DatasetStore{
		ttl:   ttl,
		items: make(map[string]*storeItem),
	}

	// Start cleanup goroutine to remove expired sessions
	go store.cleanupExpired()

	return store
}

// Put stores ds under a fresh session id and returns the id
func (ds *DatasetStore) Put(dataset *entities.Dataset) string {
	id := uuid.New().String()
	ds.Replace(id, dataset)
	return id
}

// Replace swaps the session's dataset wholesale and refreshes its TTL
func (ds *DatasetStore) Replace(sessionID string, dataset *entities.Dataset) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.items[sessionID] = &storeItem{
		dataset:    dataset,
		expireTime: time.Now().Add(ds.ttl),
	}
}

// Get retrieves the session's dataset; ok is false when the session is
// unknown or expired
func (ds *DatasetStore) Get(sessionID string) (*entities.Dataset, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	item, exists := ds.items[sessionID]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expireTime) {
		return nil, false
	}
	return item.dataset, true
}

// Delete removes a session
func (ds *DatasetStore) Delete(sessionID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	delete(ds.items, sessionID)
}

// cleanupExpired periodically removes expired sessions
func (ds *DatasetStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ds.mu.Lock()
		now := time.Now()
		for id, item := range ds.items {
			if now.After(item.expireTime) {
				delete(ds.items, id)
			}
		}
		ds.mu.Unlock()
	}
}
