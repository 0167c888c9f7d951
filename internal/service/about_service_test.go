package service

import (
	"errors"
	"testing"

	"github.com/rearmsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAboutTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.AboutSection{}, &db.TeamMember{}, &db.Leadership{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestActiveSnapshotPicksLatestActiveRow(t *testing.T) {
	cleanup := setupAboutTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	old := db.AboutSection{Title: "Old Story", IsActive: true}
	if err := db.DB.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed about section: %v", err)
	}
	latest := db.AboutSection{Title: "New Story", IsActive: true}
	if err := db.DB.Create(&latest).Error; err != nil {
		t.Fatalf("failed to seed about section: %v", err)
	}
	inactive := db.AboutSection{Title: "Disabled", IsActive: false}
	if err := db.DB.Create(&inactive).Error; err != nil {
		t.Fatalf("failed to seed about section: %v", err)
	}

	snapshot, err := svc.ActiveSnapshot()
	if err != nil {
		t.Fatalf("ActiveSnapshot returned error: %v", err)
	}
	if snapshot.Title != "New Story" {
		t.Fatalf("expected latest active snapshot, got %q", snapshot.Title)
	}
}

func TestActiveSnapshotNotFound(t *testing.T) {
	cleanup := setupAboutTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	if _, err := svc.ActiveSnapshot(); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected ErrAboutNotFound, got %v", err)
	}
}

func TestListTeamForAboutFiltersAndOrders(t *testing.T) {
	cleanup := setupAboutTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)
	seed := []db.TeamMember{
		{Name: "Second", Position: "Ops", SortOrder: 2, IsActive: true, ShowOnAbout: true},
		{Name: "First", Position: "Lead", SortOrder: 1, IsActive: true, ShowOnAbout: true},
		{Name: "Hidden", Position: "Advisor", SortOrder: 0, IsActive: true, ShowOnAbout: false},
		{Name: "Gone", Position: "Past", SortOrder: 0, IsActive: false, ShowOnAbout: true},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed team member: %v", err)
		}
	}

	members, err := svc.ListTeamForAbout()
	if err != nil {
		t.Fatalf("ListTeamForAbout returned error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 visible members, got %d", len(members))
	}
	if members[0].Name != "First" || members[1].Name != "Second" {
		t.Fatalf("expected display order ascending, got %v", []string{members[0].Name, members[1].Name})
	}
}

func TestCEOMessageReturnsFirstCEO(t *testing.T) {
	cleanup := setupAboutTestDB(t)
	defer cleanup()

	svc := NewAboutService(db.DB)

	ceo, err := svc.CEOMessage()
	if err != nil {
		t.Fatalf("CEOMessage returned error: %v", err)
	}
	if ceo != nil {
		t.Fatal("expected nil when no CEO exists")
	}

	seed := []db.Leadership{
		{Name: "CTO", Title: "CTO", DisplayOrder: 1},
		{Name: "Chief", Title: "CEO", IsCEO: true, DisplayOrder: 2},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed leadership: %v", err)
		}
	}

	ceo, err = svc.CEOMessage()
	if err != nil {
		t.Fatalf("CEOMessage returned error: %v", err)
	}
	if ceo == nil || ceo.Name != "Chief" {
		t.Fatalf("expected the CEO row, got %+v", ceo)
	}
}
