package service

import (
	"testing"

	"github.com/rearmsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupNewsletterTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.NewsletterSubscriber{}); err != nil {
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

func TestSubscribeCreatesRow(t *testing.T) {
	cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(db.DB)
	if err := svc.Subscribe("reader@example.com"); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	var count int64
	db.DB.Model(&db.NewsletterSubscriber{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 subscriber, got %d", count)
	}
}

func TestSubscribeTwiceIsRejected(t *testing.T) {
	cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(db.DB)
	if err := svc.Subscribe("reader@example.com"); err != nil {
		t.Fatalf("first Subscribe returned error: %v", err)
	}

	err := svc.Subscribe("reader@example.com")
	verr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error on duplicate, got %v", err)
	}
	if len(verr.Fields["email"]) == 0 {
		t.Fatal("expected a field error keyed by email")
	}

	var count int64
	db.DB.Model(&db.NewsletterSubscriber{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 subscriber after resubmission, got %d", count)
	}
}

func TestSubscribeRejectsAddressWithoutAtSign(t *testing.T) {
	cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(db.DB)
	for _, email := range []string{"", "   ", "not-an-email"} {
		err := svc.Subscribe(email)
		if _, ok := AsValidationError(err); !ok {
			t.Fatalf("expected validation error for %q, got %v", email, err)
		}
	}

	var count int64
	db.DB.Model(&db.NewsletterSubscriber{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid submissions must not create rows, got %d", count)
	}
}
