package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobdeck/jobdeck/pkg/models"
)

// makeToken builds a signed token with the given expiry. The store never
// verifies the signature, only the exp claim.
func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testUser() *models.User {
	return &models.User{ID: 42, Email: "jane@example.com", Role: models.RoleCandidate}
}

func TestSetAndReload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("fresh store should not be authenticated")
	}

	token := makeToken(t, time.Now().Add(time.Hour))
	if err := store.Set(token, testUser()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !store.IsAuthenticated() {
		t.Error("expected authenticated after Set")
	}

	// A second store seeded from the same directory picks up the session.
	reloaded, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	if !reloaded.IsAuthenticated() {
		t.Error("expected reloaded store to be authenticated")
	}
	user := reloaded.Current()
	if user == nil || user.Email != "jane@example.com" {
		t.Errorf("unexpected reloaded user: %+v", user)
	}
	if reloaded.Token() != token {
		t.Error("token not preserved across reload")
	}
}

func TestExpiredTokenDropped(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	token := makeToken(t, time.Now().Add(-time.Minute))
	if err := store.Set(token, testUser()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reloaded, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	if reloaded.IsAuthenticated() {
		t.Error("expired token should not establish a session")
	}
	if reloaded.Current() != nil {
		t.Error("expired session should have no user")
	}

	// Stale files are removed so the next start is clean.
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("stale token file should have been removed")
	}
}

func TestGarbageTokenDropped(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte("not-a-jwt"), 0600); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("garbage token should not establish a session")
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)
	if err := store.Set(makeToken(t, time.Now().Add(time.Hour)), testUser()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	store.Clear()

	if store.IsAuthenticated() {
		t.Error("expected logged out after Clear")
	}
	// Both entries cleared together.
	for _, name := range []string{tokenFile, userFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", name)
		}
	}
}

func TestRoleChecks(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	if store.HasRole(models.RoleCandidate) {
		t.Error("logged-out store should have no role")
	}
	if store.HasAnyRole(models.RoleCandidate, models.RoleEmployer) {
		t.Error("logged-out store should match no roles")
	}

	if err := store.Set(makeToken(t, time.Now().Add(time.Hour)), testUser()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if !store.HasRole(models.RoleCandidate) {
		t.Error("expected CANDIDATE role")
	}
	if store.HasRole(models.RoleEmployer) {
		t.Error("did not expect EMPLOYER role")
	}
	if !store.HasAnyRole(models.RoleEmployer, models.RoleCandidate) {
		t.Error("expected HasAnyRole to match CANDIDATE")
	}
}

func TestUpdateEmail(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	if err := store.UpdateEmail("new@example.com"); err != ErrNotAuthenticated {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}

	if err := store.Set(makeToken(t, time.Now().Add(time.Hour)), testUser()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.UpdateEmail("new@example.com"); err != nil {
		t.Fatalf("UpdateEmail: %v", err)
	}
	if store.Current().Email != "new@example.com" {
		t.Error("cached email not updated")
	}

	reloaded, _ := NewStore(dir)
	if got := reloaded.Current().Email; got != "new@example.com" {
		t.Errorf("persisted email = %q, want new@example.com", got)
	}
}
