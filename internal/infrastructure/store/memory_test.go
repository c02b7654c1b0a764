package store

import (
	"testing"
	"time"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

func storeFixture() *entities.Dataset {
	return &entities.Dataset{
		Participants: []entities.Participant{{ID: "P001", Domain: "AI/ML"}},
		Seed:         42,
	}
}

func TestPutAndGet(t *testing.T) {
	st := NewDatasetStore(time.Hour)

	id := st.Put(storeFixture())
	if id == "" {
		t.Fatal("empty session id")
	}

	ds, ok := st.Get(id)
	if !ok {
		t.Fatal("stored dataset not found")
	}
	if ds.Seed != 42 {
		t.Fatalf("got seed %d, want 42", ds.Seed)
	}
}

func TestGet_UnknownSession(t *testing.T) {
	st := NewDatasetStore(time.Hour)
	if _, ok := st.Get("nope"); ok {
		t.Fatal("unknown session reported as found")
	}
}

func TestReplace_SwapsWholesale(t *testing.T) {
	st := NewDatasetStore(time.Hour)
	id := st.Put(storeFixture())

	st.Replace(id, &entities.Dataset{Seed: 99})

	ds, ok := st.Get(id)
	if !ok || ds.Seed != 99 {
		t.Fatalf("replace did not take: %+v ok=%v", ds, ok)
	}
}

func TestGet_ExpiredSession(t *testing.T) {
	st := NewDatasetStore(10 * time.Millisecond)
	id := st.Put(storeFixture())

	time.Sleep(30 * time.Millisecond)

	if _, ok := st.Get(id); ok {
		t.Fatal("expired session still readable")
	}
}

func TestDelete(t *testing.T) {
	st := NewDatasetStore(time.Hour)
	id := st.Put(storeFixture())

	st.Delete(id)

	if _, ok := st.Get(id); ok {
		t.Fatal("deleted session still readable")
	}
}
