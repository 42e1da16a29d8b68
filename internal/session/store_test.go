package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"PATHFINDER_BACK-END/internal/budget"
	"PATHFINDER_BACK-END/internal/models"
)

func sampleContent() Content {
	return Content{
		Itinerary: models.Itinerary{
			Days: []models.DayPlan{{
				Day: 1,
				Activities: models.DayActivities{
					Morning: models.Activity{Name: "Temple", Time: "09:00", Cost: "Rp 50.000"},
					Dinner:  models.Activity{Name: "Seafood", Time: "19:00 - 21:00", Cost: "Rp 150.000"},
				},
			}},
			Budget: models.Budget{Activities: 800000, Total: 3000000, Currency: "IDR"},
		},
	}
}

func TestStoreCreateGetDelete(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{Destination: "Bali", Days: 1}, sampleContent())

	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != s {
		t.Error("Get should return the same session")
	}
	if st.Count() != 1 {
		t.Errorf("Count = %d; want 1", st.Count())
	}

	if err := st.Delete(s.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := st.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("after Delete err = %v; want ErrSessionNotFound", err)
	}
	if err := st.Delete(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete err = %v; want ErrSessionNotFound", err)
	}
}

func TestStoreExpiry(t *testing.T) {
	st := NewStore(10*time.Millisecond, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())
	time.Sleep(30 * time.Millisecond)
	if _, err := st.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v; want ErrSessionNotFound after ttl", err)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())

	snap := s.Snapshot()
	snap.Itinerary.Days[0].Activities.Dinner.Name = "changed"
	if s.Snapshot().Itinerary.Days[0].Activities.Dinner.Name != "Seafood" {
		t.Error("modifying a snapshot leaked into the session")
	}
}

func TestMutateRemovesDinner(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())

	snap, err := s.Mutate(func(it *models.Itinerary) error {
		_, err := budget.Remove(it, 0, models.SlotDinner)
		return err
	})
	if err != nil {
		t.Fatalf("Mutate returned error: %v", err)
	}
	if snap.Itinerary.Budget.Activities != 650000 || snap.Itinerary.Budget.Total != 2850000 {
		t.Errorf("budget = %+v; want activities 650000 total 2850000", snap.Itinerary.Budget)
	}
	if snap.Itinerary.Days[0].Activities.Dinner.Name != budget.FreeTimeName {
		t.Errorf("dinner = %+v; want free time placeholder", snap.Itinerary.Days[0].Activities.Dinner)
	}

	_, err = s.Mutate(func(it *models.Itinerary) error {
		_, err := budget.Remove(it, 5, models.SlotDinner)
		return err
	})
	if !errors.Is(err, budget.ErrOutOfRange) {
		t.Errorf("err = %v; want ErrOutOfRange", err)
	}
	if s.Snapshot().Itinerary.Budget.Total != 2850000 {
		t.Error("out-of-range mutation changed the budget")
	}
}

func TestRegenerationLimit(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())

	for i := 1; i <= 3; i++ {
		if err := s.CheckRegeneration(); err != nil {
			t.Fatalf("regeneration %d: CheckRegeneration = %v", i, err)
		}
		snap, err := s.Regenerate(sampleContent())
		if err != nil {
			t.Fatalf("regeneration %d: %v", i, err)
		}
		if snap.RegenerationsUsed != i {
			t.Errorf("used = %d; want %d", snap.RegenerationsUsed, i)
		}
	}

	if err := s.CheckRegeneration(); !errors.Is(err, ErrRegenerationLimit) {
		t.Errorf("CheckRegeneration = %v; want ErrRegenerationLimit", err)
	}
	if _, err := s.Regenerate(sampleContent()); !errors.Is(err, ErrRegenerationLimit) {
		t.Errorf("Regenerate = %v; want ErrRegenerationLimit", err)
	}
}

func TestGuard(t *testing.T) {
	g := NewGuard()

	release, err := g.TryAcquire("s1")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if _, err := g.TryAcquire("s1"); !errors.Is(err, ErrInFlight) {
		t.Errorf("second acquire = %v; want ErrInFlight", err)
	}
	if _, err := g.TryAcquire("s2"); err != nil {
		t.Errorf("other key should not be blocked: %v", err)
	}

	release()
	release()
	if g.Busy("s1") {
		t.Error("s1 still busy after release")
	}
	if _, err := g.TryAcquire("s1"); err != nil {
		t.Errorf("acquire after release: %v", err)
	}
}

func TestGuardConcurrent(t *testing.T) {
	g := NewGuard()
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		acquired int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.TryAcquire("same"); err == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if acquired != 1 {
		t.Errorf("acquired %d times; want exactly 1", acquired)
	}
}

func TestStoreTakeConcurrent(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := st.Take(s.ID); err == nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if taken != 1 {
		t.Errorf("taken %d times; want exactly 1", taken)
	}
	if _, err := st.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Take = %v; want ErrSessionNotFound", err)
	}
}

func TestStoreTakeAndRestore(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())

	taken, err := st.Take(s.ID)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if _, err := taken.Mutate(func(*models.Itinerary) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Mutate on taken session = %v; want ErrSessionNotFound", err)
	}

	st.Restore(taken)
	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatalf("Get after Restore: %v", err)
	}
	if _, err := got.Mutate(func(*models.Itinerary) error { return nil }); err != nil {
		t.Errorf("Mutate after Restore = %v; want nil", err)
	}
}

func TestDeletedSessionRejectsChanges(t *testing.T) {
	st := NewStore(time.Hour, time.Hour, 3)
	s := st.Create(models.TripRequest{}, sampleContent())
	if err := st.Delete(s.ID); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Regenerate(sampleContent())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Regenerate after Delete = %v; want ErrSessionNotFound", err)
	}
	if snap.RegenerationsUsed != 0 {
		t.Errorf("used = %d; want 0", snap.RegenerationsUsed)
	}
	called := false
	if _, err := s.Mutate(func(*models.Itinerary) error { called = true; return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Mutate after Delete = %v; want ErrSessionNotFound", err)
	}
	if called {
		t.Error("mutation ran on a deleted session")
	}
}
