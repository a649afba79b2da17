package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/models/entities"
	"fundforge/platform/internal/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// In-memory stores standing in for the sqlx-backed repositories.
type fakeExclusionStore struct {
	global   map[int64]bool
	projects map[int64]map[int64]bool
}

func newFakeExclusionStore() *fakeExclusionStore {
	return &fakeExclusionStore{
		global:   make(map[int64]bool),
		projects: make(map[int64]map[int64]bool),
	}
}

func (f *fakeExclusionStore) EnsureExclusion(ctx context.Context, userID int64, projectID *int64) error {
	if projectID == nil {
		f.global[userID] = true
		return nil
	}
	if f.projects[userID] == nil {
		f.projects[userID] = make(map[int64]bool)
	}
	f.projects[userID][*projectID] = true
	return nil
}

func (f *fakeExclusionStore) DropExclusion(ctx context.Context, userID int64, projectID *int64) error {
	if projectID == nil {
		delete(f.global, userID)
		return nil
	}
	delete(f.projects[userID], *projectID)
	return nil
}

func (f *fakeExclusionStore) ListExclusions(ctx context.Context, userID int64) ([]entities.ProjectUnsubscribe, error) {
	var records []entities.ProjectUnsubscribe
	if f.global[userID] {
		records = append(records, entities.ProjectUnsubscribe{UserID: userID})
	}
	for pid := range f.projects[userID] {
		p := pid
		records = append(records, entities.ProjectUnsubscribe{UserID: userID, ProjectID: &p})
	}
	return records, nil
}

type fakeReminderStore struct {
	queue map[int64]map[int64]bool
}

func (f *fakeReminderStore) ListQueuedProjects(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for pid := range f.queue[userID] {
		ids = append(ids, pid)
	}
	return ids, nil
}

func (f *fakeReminderStore) Remove(ctx context.Context, userID, projectID int64) error {
	delete(f.queue[userID], projectID)
	return nil
}

func setupUserDeps(t *testing.T) (*Dependencies, *gorm.DB, *fakeExclusionStore, *fakeReminderStore) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.CategoryFollower{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	digest, _ := bcrypt.GenerateFromPassword([]byte("orig-password"), bcrypt.MinCost)
	user := entities.User{Name: "Lucia", Email: "lucia@example.com", PasswordDigest: string(digest)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	exclusions := newFakeExclusionStore()
	reminders := &fakeReminderStore{queue: map[int64]map[int64]bool{user.ID: {5: true, 9: true}}}

	users := repositories.NewUserRepositoryGORM(db)
	subscriptionSvc := services.NewSubscriptionService(exclusions)
	reminderSvc := services.NewReminderService(reminders, nil)

	deps := &Dependencies{
		Services: &Services{
			Subscriptions: subscriptionSvc,
			Reminders:     reminderSvc,
			User:          services.NewUserService(users, subscriptionSvc, reminderSvc),
		},
	}
	return deps, db, exclusions, reminders
}

func TestUpdateUserHandler_Success(t *testing.T) {
	deps, db, exclusions, reminders := setupUserDeps(t)

	payload := map[string]any{
		"name":         "Lucia M.",
		"unsubscribes": map[string]bool{"7": false},
		"reminders":    []string{"9"},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/user", bytes.NewReader(body))
	req = authedRequest(req, 1)
	rec := httptest.NewRecorder()

	UpdateUserHandler(deps, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var user entities.User
	db.First(&user, 1)
	if user.Name != "Lucia M." {
		t.Errorf("expected profile update applied, got %q", user.Name)
	}
	if !exclusions.projects[1][7] {
		t.Error("expected exclusion record for project 7")
	}
	if reminders.queue[1][5] || !reminders.queue[1][9] {
		t.Errorf("expected reminder queue {9}, got %v", reminders.queue[1])
	}
}

func TestUpdateUserHandler_ValidationFailureKeepsPreferences(t *testing.T) {
	deps, _, exclusions, _ := setupUserDeps(t)

	payload := map[string]any{
		"email":        "not-an-email",
		"unsubscribes": map[string]bool{"3": false},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/user", bytes.NewReader(body))
	req = authedRequest(req, 1)
	rec := httptest.NewRecorder()

	UpdateUserHandler(deps, nil)(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Errors map[string][]string `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Errors["email"]) == 0 {
		t.Errorf("expected email field error, got %v", resp.Data.Errors)
	}

	// Preference reconciliation committed before validation failed.
	if !exclusions.projects[1][3] {
		t.Error("expected exclusion for project 3 despite 422")
	}
}

func TestUpdateUserHandler_MalformedProjectID(t *testing.T) {
	deps, _, _, _ := setupUserDeps(t)

	body := []byte(`{"unsubscribes": {"seven": true}}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/user", bytes.NewReader(body))
	req = authedRequest(req, 1)
	rec := httptest.NewRecorder()

	UpdateUserHandler(deps, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetUserSettingsHandler(t *testing.T) {
	deps, _, exclusions, _ := setupUserDeps(t)
	pid := int64(7)
	exclusions.projects[1] = map[int64]bool{pid: true}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	req = authedRequest(req, 1)
	rec := httptest.NewRecorder()

	GetUserSettingsHandler(deps)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			UnsubscribedFrom []int64 `json:"unsubscribed_from"`
			RemindersFor     []int64 `json:"reminders_for"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.UnsubscribedFrom) != 1 || resp.Data.UnsubscribedFrom[0] != 7 {
		t.Errorf("unexpected exclusion state: %v", resp.Data.UnsubscribedFrom)
	}
	if len(resp.Data.RemindersFor) != 2 {
		t.Errorf("unexpected reminder state: %v", resp.Data.RemindersFor)
	}
}
