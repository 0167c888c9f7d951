package db

import (
	"errors"
	"strings"
	"testing"
)

func TestLeadershipHomeExcerptLimit(t *testing.T) {
	cleanup := setupModelTestDB(t)
	defer cleanup()

	long := Leadership{Name: "Jeanne I.", Title: "CEO", HomeExcerpt: strings.Repeat("a", 500)}
	if err := DB.Create(&long).Error; !errors.Is(err, ErrHomeExcerptTooLong) {
		t.Fatalf("expected ErrHomeExcerptTooLong, got %v", err)
	}

	var count int64
	DB.Model(&Leadership{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no leadership rows after rejected save, got %d", count)
	}

	ok := Leadership{Name: "Jeanne I.", Title: "CEO", HomeExcerpt: strings.Repeat("a", 200)}
	if err := DB.Create(&ok).Error; err != nil {
		t.Fatalf("expected 200-char excerpt to save, got %v", err)
	}
}

func TestAboutSectionMetaLimits(t *testing.T) {
	cleanup := setupModelTestDB(t)
	defer cleanup()

	badTitle := AboutSection{Title: "About", MetaTitle: strings.Repeat("t", 61)}
	if err := DB.Create(&badTitle).Error; !errors.Is(err, ErrMetaTitleTooLong) {
		t.Fatalf("expected ErrMetaTitleTooLong, got %v", err)
	}

	badDescription := AboutSection{Title: "About", MetaDescription: strings.Repeat("d", 161)}
	if err := DB.Create(&badDescription).Error; !errors.Is(err, ErrMetaDescriptionTooLong) {
		t.Fatalf("expected ErrMetaDescriptionTooLong, got %v", err)
	}

	ok := AboutSection{
		Title:           "About",
		MetaTitle:       strings.Repeat("t", 60),
		MetaDescription: strings.Repeat("d", 160),
	}
	if err := DB.Create(&ok).Error; err != nil {
		t.Fatalf("expected in-bound meta fields to save, got %v", err)
	}
}
