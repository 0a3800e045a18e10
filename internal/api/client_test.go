package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/internal/session"
	"github.com/jobdeck/jobdeck/pkg/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	return New(server.URL, 5*time.Second, sess), sess
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRequestCarriesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(models.PageResponse[models.Job]{})
	}))

	token := signedToken(t, time.Now().Add(time.Hour))
	if err := sess.Set(token, &models.User{ID: 1, Role: models.RoleCandidate}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.ListJobs(context.Background(), 0, 10); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestErrorDecoding(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantFields int
	}{
		{"message field", 500, `{"message":"boom"}`, "boom", 0},
		{"error field", 400, `{"error":"bad input"}`, "bad input", 0},
		{"plain text", 503, `service unavailable`, "service unavailable", 0},
		{"field errors", 400, `{"message":"validation failed","fieldErrors":{"email":"already taken","password":"too short"}}`, "validation failed", 2},
		{"empty body", 502, ``, "request failed with status 502", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := client.ListJobs(context.Background(), 0, 10)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Error(), tt.wantMsg)
			}
			if len(apiErr.FieldErrors) != tt.wantFields {
				t.Errorf("field errors = %v, want %d entries", apiErr.FieldErrors, tt.wantFields)
			}
		})
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	token := ""
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.JwtResponse{
			Token: token,
			User:  &models.User{ID: 7, Email: "jane@example.com", Role: models.RoleCandidate},
		})
	}))
	token = signedToken(t, time.Now().Add(time.Hour))

	resp, err := client.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User == nil || resp.User.ID != 7 {
		t.Errorf("unexpected login response: %+v", resp)
	}
	if !sess.IsAuthenticated() {
		t.Error("session not established after login")
	}
}

func TestLoginTermsAcceptanceRequired(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.JwtResponse{
			RequiresTermsAcceptance: true,
			Message:                 "updated terms must be accepted",
		})
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})
	if !errors.Is(err, ErrTermsAcceptanceRequired) {
		t.Fatalf("expected ErrTermsAcceptanceRequired, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Error("terms-acceptance response must not establish a session")
	}
}

func TestLoginRetriesWithTermsAccepted(t *testing.T) {
	token := ""
	var seen []bool
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		seen = append(seen, creds.TermsAccepted)
		if !creds.TermsAccepted {
			json.NewEncoder(w).Encode(models.JwtResponse{
				RequiresTermsAcceptance: true,
				Message:                 "updated terms must be accepted",
			})
			return
		}
		json.NewEncoder(w).Encode(models.JwtResponse{
			Token: token,
			User:  &models.User{ID: 5, Email: "jane@example.com", Role: models.RoleCandidate},
		})
	}))
	token = signedToken(t, time.Now().Add(time.Hour))

	creds := models.LoginRequest{Email: "jane@example.com", Password: "pw"}
	if _, err := client.Login(context.Background(), creds); !errors.Is(err, ErrTermsAcceptanceRequired) {
		t.Fatalf("expected ErrTermsAcceptanceRequired, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatal("first attempt must not establish a session")
	}

	creds.TermsAccepted = true
	resp, err := client.Login(context.Background(), creds)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if resp.User == nil || resp.User.ID != 5 {
		t.Errorf("unexpected login response: %+v", resp)
	}
	if !sess.IsAuthenticated() {
		t.Error("session not established after accepted retry")
	}
	if len(seen) != 2 || seen[0] || !seen[1] {
		t.Errorf("termsAccepted across attempts = %v, want [false true]", seen)
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Account password expired"}`)
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x", Password: "stale"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Account password expired" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Error("failed login must leave the session logged out")
	}
}

func TestSearchJobsSendsCriteria(t *testing.T) {
	var got search.Criteria
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jobs/search" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode criteria: %v", err)
		}
		json.NewEncoder(w).Encode(models.PageResponse[models.Job]{TotalElements: 1})
	}))

	criteria := search.Default()
	criteria.JobTitle = "Engineer"
	criteria.Skills = []string{"Go"}
	criteria.Page = 1

	resp, err := client.SearchJobs(context.Background(), criteria)
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if resp.TotalElements != 1 {
		t.Errorf("TotalElements = %d, want 1", resp.TotalElements)
	}
	if got.JobTitle != "Engineer" || got.Page != 1 || len(got.Skills) != 1 {
		t.Errorf("server saw criteria %+v", got)
	}
}

func TestApplyMultipart(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(resume, []byte("%PDF-1.4 fake"), 0644); err != nil {
		t.Fatal(err)
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}

		data := r.FormValue("applicationData")
		var submission models.ApplicationSubmission
		if err := json.Unmarshal([]byte(data), &submission); err != nil {
			t.Errorf("applicationData not valid JSON: %v", err)
		}
		if submission.JobID != 99 {
			t.Errorf("jobId = %d, want 99", submission.JobID)
		}

		file, header, err := r.FormFile("resumeFile")
		if err != nil {
			t.Fatalf("resumeFile part missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "resume.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("resume content type = %q, want application/pdf", ct)
		}

		json.NewEncoder(w).Encode(models.JobApplication{ID: 1, JobID: 99, Status: models.StatusApplied})
	}))

	submission := models.ApplicationSubmission{
		JobID:             99,
		UseExistingResume: false,
		DisclosureAnswers: []models.DisclosureAnswer{{QuestionID: 1, AnswerText: "Yes"}},
	}
	app, err := client.Apply(context.Background(), "job-abc", submission, resume, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if app.Status != models.StatusApplied {
		t.Errorf("status = %q", app.Status)
	}
}

func TestUpdateEmailRewritesCachedUser(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/auth/update-email" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, "Email updated")
	}))
	if err := sess.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: 3, Email: "old@example.com", Role: models.RoleCandidate}); err != nil {
		t.Fatal(err)
	}

	msg, err := client.UpdateEmail(context.Background(), models.EmailUpdateRequest{NewEmail: "new@example.com", CurrentPassword: "pw"})
	if err != nil {
		t.Fatalf("UpdateEmail: %v", err)
	}
	if msg != "Email updated" {
		t.Errorf("message = %q", msg)
	}
	if sess.Current().Email != "new@example.com" {
		t.Error("cached user email not rewritten after success")
	}
}

func TestUpdateEmailFailureKeepsCachedUser(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"error":"email already in use"}`)
	}))
	if err := sess.Set(signedToken(t, time.Now().Add(time.Hour)), &models.User{ID: 3, Email: "old@example.com", Role: models.RoleCandidate}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.UpdateEmail(context.Background(), models.EmailUpdateRequest{NewEmail: "taken@example.com"}); err == nil {
		t.Fatal("expected error")
	}
	if sess.Current().Email != "old@example.com" {
		t.Error("cached email must be untouched on failure")
	}
}

func TestUpdateApplicationStatusSendsQueryParam(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("status"); got != models.StatusShortlisted {
			t.Errorf("status param = %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.UpdateApplicationStatus(context.Background(), 12, models.StatusShortlisted); err != nil {
		t.Fatalf("UpdateApplicationStatus: %v", err)
	}
}
