package savedjobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobdeck/jobdeck/internal/session"
	"github.com/jobdeck/jobdeck/pkg/models"
)

// fakeBackend records calls and serves a mutable saved-job list.
type fakeBackend struct {
	saved       []models.Job
	saveErr     error
	listErr     error
	saveCalls   int
	unsaveCalls int
	listCalls   int
}

func (f *fakeBackend) SaveJob(ctx context.Context, jobID string) (*models.SavedJob, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, models.Job{JobID: jobID, Title: "job " + jobID})
	return &models.SavedJob{JobID: jobID}, nil
}

func (f *fakeBackend) UnsaveJob(ctx context.Context, jobID string) (string, error) {
	f.unsaveCalls++
	kept := f.saved[:0]
	for _, job := range f.saved {
		if job.JobID != jobID {
			kept = append(kept, job)
		}
	}
	f.saved = kept
	return "removed", nil
}

func (f *fakeBackend) SavedJobs(ctx context.Context) ([]models.Job, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Job(nil), f.saved...), nil
}

func (f *fakeBackend) IsJobSaved(ctx context.Context, jobID string) (bool, error) {
	for _, job := range f.saved {
		if job.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func sessionWithRole(t *testing.T, role string) *session.Store {
	t.Helper()
	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if role == "" {
		return store
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(signed, &models.User{ID: 1, Role: role}); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestNonCandidateOperationsAreInert(t *testing.T) {
	backend := &fakeBackend{saved: []models.Job{{JobID: "a"}}}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleEmployer))

	if backend.listCalls != 0 {
		t.Error("constructor must not load for non-candidates")
	}

	saved, err := cache.Save(context.Background(), "a")
	if saved != nil || err != nil {
		t.Errorf("Save = (%v, %v), want inert nils", saved, err)
	}
	if err := cache.Unsave(context.Background(), "a"); err != nil {
		t.Errorf("Unsave = %v, want nil", err)
	}
	if cache.IsSavedSync("a") {
		t.Error("IsSavedSync must be false for non-candidates")
	}
	if ok, err := cache.IsSaved(context.Background(), "a"); ok || err != nil {
		t.Errorf("IsSaved = (%v, %v), want (false, nil)", ok, err)
	}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Errorf("Refresh = %v, want nil", err)
	}
	if backend.saveCalls+backend.unsaveCalls+backend.listCalls != 0 {
		t.Error("no HTTP call may be issued for non-candidates")
	}
}

func TestIsSavedSyncBeforeAnyLoad(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("network down")}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	for _, id := range []string{"a", "b", "never-seen"} {
		if cache.IsSavedSync(id) {
			t.Errorf("IsSavedSync(%q) = true before any successful load", id)
		}
	}
}

func TestSaveMarksIDImmediately(t *testing.T) {
	backend := &fakeBackend{}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	if cache.IsSavedSync("j1") {
		t.Fatal("unexpected pre-save membership")
	}
	if _, err := cache.Save(context.Background(), "j1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !cache.IsSavedSync("j1") {
		t.Error("IsSavedSync must be true right after a successful save, no round trip")
	}
	if len(cache.Jobs()) != 1 {
		t.Errorf("cached list = %v, want the reloaded job", cache.Jobs())
	}
}

func TestSaveFailureDoesNotMark(t *testing.T) {
	backend := &fakeBackend{saveErr: errors.New("409 conflict")}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	if _, err := cache.Save(context.Background(), "j1"); err == nil {
		t.Fatal("expected save error")
	}
	if cache.IsSavedSync("j1") {
		t.Error("failed save must not mark the id")
	}
}

// The id is applied before the confirming reload; a failed reload leaves it
// in place. This mirrors the intended behavior of the save path as shipped.
func TestSaveKeepsIDWhenReloadFails(t *testing.T) {
	backend := &fakeBackend{}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	backend.listErr = errors.New("reload failed")
	if _, err := cache.Save(context.Background(), "j1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !cache.IsSavedSync("j1") {
		t.Error("id should remain marked even though the reload failed")
	}
}

func TestUnsaveFiltersLocally(t *testing.T) {
	backend := &fakeBackend{saved: []models.Job{{JobID: "a"}, {JobID: "b"}}}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	listCallsBefore := backend.listCalls
	if err := cache.Unsave(context.Background(), "a"); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
	if backend.listCalls != listCallsBefore {
		t.Error("unsave must not trigger a reload")
	}
	if cache.IsSavedSync("a") {
		t.Error("unsaved id still in set")
	}
	jobs := cache.Jobs()
	if len(jobs) != 1 || jobs[0].JobID != "b" {
		t.Errorf("cached list = %v, want only b", jobs)
	}
}

func TestRefreshReplacesState(t *testing.T) {
	backend := &fakeBackend{saved: []models.Job{{JobID: "a"}}}
	cache := NewCache(context.Background(), backend, sessionWithRole(t, models.RoleCandidate))

	backend.saved = []models.Job{{JobID: "x"}, {JobID: "y"}}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if cache.IsSavedSync("a") {
		t.Error("stale id survived refresh")
	}
	if !cache.IsSavedSync("x") || !cache.IsSavedSync("y") {
		t.Error("refreshed ids missing")
	}
}
