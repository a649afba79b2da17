package services

import (
	"context"
	"testing"

	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/models/entities"
)

// mockExclusionStore keeps exclusion records in memory with the same
// idempotent semantics the SQL layer provides.
type mockExclusionStore struct {
	global   map[int64]bool
	projects map[int64]map[int64]bool
	ensures  int
	drops    int
}

func newMockExclusionStore() *mockExclusionStore {
	return &mockExclusionStore{
		global:   make(map[int64]bool),
		projects: make(map[int64]map[int64]bool),
	}
}

func (m *mockExclusionStore) EnsureExclusion(ctx context.Context, userID int64, projectID *int64) error {
	m.ensures++
	if projectID == nil {
		m.global[userID] = true
		return nil
	}
	if m.projects[userID] == nil {
		m.projects[userID] = make(map[int64]bool)
	}
	m.projects[userID][*projectID] = true
	return nil
}

func (m *mockExclusionStore) DropExclusion(ctx context.Context, userID int64, projectID *int64) error {
	m.drops++
	if projectID == nil {
		delete(m.global, userID)
		return nil
	}
	delete(m.projects[userID], *projectID)
	return nil
}

func (m *mockExclusionStore) ListExclusions(ctx context.Context, userID int64) ([]entities.ProjectUnsubscribe, error) {
	var records []entities.ProjectUnsubscribe
	if m.global[userID] {
		records = append(records, entities.ProjectUnsubscribe{UserID: userID})
	}
	for pid := range m.projects[userID] {
		p := pid
		records = append(records, entities.ProjectUnsubscribe{UserID: userID, ProjectID: &p})
	}
	return records, nil
}

func (m *mockExclusionStore) snapshot(userID int64) (bool, map[int64]bool) {
	set := make(map[int64]bool)
	for pid := range m.projects[userID] {
		set[pid] = true
	}
	return m.global[userID], set
}

func TestSubscriptionReconcile_GlobalUnsubscribe(t *testing.T) {
	store := newMockExclusionStore()
	svc := NewSubscriptionService(store)

	err := svc.Reconcile(context.Background(), 1, dtos.SubscriptionInput{UnsubscribedFromAll: true})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	global, projects := store.snapshot(1)
	if !global {
		t.Error("expected global exclusion record to exist")
	}
	if len(projects) != 0 {
		t.Errorf("expected no per-project records, got %v", projects)
	}
}

func TestSubscriptionReconcile_GlobalResubscribe(t *testing.T) {
	store := newMockExclusionStore()
	store.global[1] = true
	svc := NewSubscriptionService(store)

	err := svc.Reconcile(context.Background(), 1, dtos.SubscriptionInput{UnsubscribedFromAll: false})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if global, _ := store.snapshot(1); global {
		t.Error("expected global exclusion record to be dropped")
	}
}

func TestSubscriptionReconcile_ProjectResubscribe(t *testing.T) {
	store := newMockExclusionStore()
	store.projects[1] = map[int64]bool{7: true}
	svc := NewSubscriptionService(store)

	err := svc.Reconcile(context.Background(), 1, dtos.SubscriptionInput{
		ProjectToggles: map[int64]bool{7: true},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if _, projects := store.snapshot(1); projects[7] {
		t.Error("expected exclusion record for project 7 to be gone")
	}
}

func TestSubscriptionReconcile_ProjectUnsubscribe(t *testing.T) {
	store := newMockExclusionStore()
	svc := NewSubscriptionService(store)

	err := svc.Reconcile(context.Background(), 1, dtos.SubscriptionInput{
		ProjectToggles: map[int64]bool{3: false, 4: true},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	_, projects := store.snapshot(1)
	if !projects[3] {
		t.Error("expected exclusion record for project 3")
	}
	if projects[4] {
		t.Error("did not expect exclusion record for project 4")
	}
}

func TestSubscriptionReconcile_Idempotent(t *testing.T) {
	store := newMockExclusionStore()
	svc := NewSubscriptionService(store)

	input := dtos.SubscriptionInput{
		UnsubscribedFromAll: true,
		ProjectToggles:      map[int64]bool{3: false, 7: true},
	}

	if err := svc.Reconcile(context.Background(), 1, input); err != nil {
		t.Fatalf("first Reconcile failed: %v", err)
	}
	globalOnce, projectsOnce := store.snapshot(1)

	if err := svc.Reconcile(context.Background(), 1, input); err != nil {
		t.Fatalf("second Reconcile failed: %v", err)
	}
	globalTwice, projectsTwice := store.snapshot(1)

	if globalOnce != globalTwice || len(projectsOnce) != len(projectsTwice) {
		t.Errorf("repeat reconcile diverged: (%v %v) vs (%v %v)",
			globalOnce, projectsOnce, globalTwice, projectsTwice)
	}
	for pid := range projectsOnce {
		if !projectsTwice[pid] {
			t.Errorf("project %d missing after second reconcile", pid)
		}
	}
}

// The final state must depend only on the input, not on prior state.
func TestSubscriptionReconcile_SetDeterminism(t *testing.T) {
	input := dtos.SubscriptionInput{
		ProjectToggles: map[int64]bool{1: false, 2: true, 3: false},
	}

	empty := newMockExclusionStore()
	if err := NewSubscriptionService(empty).Reconcile(context.Background(), 9, input); err != nil {
		t.Fatalf("Reconcile on empty state failed: %v", err)
	}

	dirty := newMockExclusionStore()
	dirty.global[9] = true
	dirty.projects[9] = map[int64]bool{2: true, 5: true}
	// Project 5 is untouched by the input; everything the input names must
	// converge regardless of where it started.
	if err := NewSubscriptionService(dirty).Reconcile(context.Background(), 9, dtos.SubscriptionInput{
		UnsubscribedFromAll: input.UnsubscribedFromAll,
		ProjectToggles:      input.ProjectToggles,
	}); err != nil {
		t.Fatalf("Reconcile on dirty state failed: %v", err)
	}

	ge, pe := empty.snapshot(9)
	gd, pd := dirty.snapshot(9)
	if ge != gd {
		t.Errorf("global state diverged: %v vs %v", ge, gd)
	}
	for _, pid := range []int64{1, 2, 3} {
		if pe[pid] != pd[pid] {
			t.Errorf("project %d diverged: %v vs %v", pid, pe[pid], pd[pid])
		}
	}
}
