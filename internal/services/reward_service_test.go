package services

import (
	"context"
	"errors"
	"testing"

	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/models/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupRewardTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&entities.Project{}, &entities.Reward{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedProjectWithRewards(t *testing.T, db *gorm.DB, ownerID int64) (int64, []entities.Reward) {
	project := entities.Project{UserID: ownerID, Name: "Modular Synth Zine"}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}

	rewards := []entities.Reward{
		{ProjectID: project.ID, Title: "Sticker pack", MinimumValue: 5, Position: 0},
		{ProjectID: project.ID, Title: "Signed copy", MinimumValue: 25, Position: 1},
		{ProjectID: project.ID, Title: "Studio visit", MinimumValue: 100, Position: 2},
	}
	for i := range rewards {
		if err := db.Create(&rewards[i]).Error; err != nil {
			t.Fatalf("Failed to seed reward: %v", err)
		}
	}
	return project.ID, rewards
}

func TestRewardReorder_WritesOnlyMovedReward(t *testing.T) {
	db := setupRewardTestDB(t)
	_, rewards := seedProjectWithRewards(t, db, 10)
	svc := NewRewardService(repositories.NewRewardRepository(db))

	err := svc.Reorder(context.Background(), 10, rewards[0].ID, 2)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	var moved, b, c entities.Reward
	db.First(&moved, rewards[0].ID)
	db.First(&b, rewards[1].ID)
	db.First(&c, rewards[2].ID)

	if moved.Position != 2 {
		t.Errorf("expected moved reward position 2, got %d", moved.Position)
	}
	if b.Position != 1 || c.Position != 2 {
		t.Errorf("sibling positions must be untouched, got %d and %d", b.Position, c.Position)
	}
}

func TestRewardReorder_RejectsNonOwner(t *testing.T) {
	db := setupRewardTestDB(t)
	_, rewards := seedProjectWithRewards(t, db, 10)
	svc := NewRewardService(repositories.NewRewardRepository(db))

	err := svc.Reorder(context.Background(), 99, rewards[0].ID, 1)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	var unchanged entities.Reward
	db.First(&unchanged, rewards[0].ID)
	if unchanged.Position != 0 {
		t.Errorf("position must not change on rejected reorder, got %d", unchanged.Position)
	}
}

func TestRewardReorder_UnknownReward(t *testing.T) {
	db := setupRewardTestDB(t)
	svc := NewRewardService(repositories.NewRewardRepository(db))

	err := svc.Reorder(context.Background(), 10, 12345, 0)
	if !errors.Is(err, repositories.ErrRewardNotFound) {
		t.Fatalf("expected ErrRewardNotFound, got %v", err)
	}
}

func TestRewardReorder_NegativePosition(t *testing.T) {
	db := setupRewardTestDB(t)
	_, rewards := seedProjectWithRewards(t, db, 10)
	svc := NewRewardService(repositories.NewRewardRepository(db))

	if err := svc.Reorder(context.Background(), 10, rewards[0].ID, -1); err == nil {
		t.Fatal("expected error for negative position")
	}
}

// Colliding positions are tolerated; display order falls back to ID.
func TestRewardList_CollidingPositionsTieBreakByID(t *testing.T) {
	db := setupRewardTestDB(t)
	projectID, rewards := seedProjectWithRewards(t, db, 10)
	svc := NewRewardService(repositories.NewRewardRepository(db))

	if err := svc.Reorder(context.Background(), 10, rewards[2].ID, 1); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	listed, err := svc.ListForProject(context.Background(), projectID)
	if err != nil {
		t.Fatalf("ListForProject failed: %v", err)
	}

	if len(listed) != 3 {
		t.Fatalf("expected 3 rewards, got %d", len(listed))
	}
	// positions are now 0, 1, 1; the two collided rewards order by ID
	if listed[0].ID != rewards[0].ID || listed[1].ID != rewards[1].ID || listed[2].ID != rewards[2].ID {
		t.Errorf("unexpected display order: %d, %d, %d", listed[0].ID, listed[1].ID, listed[2].ID)
	}
}
