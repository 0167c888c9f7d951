package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/rearmsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProductTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ProductCategory{}, &db.Product{}); err != nil {
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

func seedProductCategory(t *testing.T, name string) db.ProductCategory {
	t.Helper()
	category := db.ProductCategory{Name: name}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed product category: %v", err)
	}
	return category
}

func TestDeleteCategoryBlockedWhileProductsReferenceIt(t *testing.T) {
	cleanup := setupProductTestDB(t)
	defer cleanup()

	svc := NewProductService(db.DB)
	category := seedProductCategory(t, "Grains")

	product := db.Product{Name: "Maize", CategoryID: category.ID, ProductType: db.ProductTypeRaw, IsActive: true}
	if err := db.DB.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	if err := svc.DeleteCategory(category.ID); !errors.Is(err, ErrProductCategoryInUse) {
		t.Fatalf("expected ErrProductCategoryInUse, got %v", err)
	}

	var count int64
	db.DB.Model(&db.ProductCategory{}).Count(&count)
	if count != 1 {
		t.Fatal("category must survive a blocked delete")
	}

	if err := db.DB.Delete(&product).Error; err != nil {
		t.Fatalf("failed to remove product: %v", err)
	}
	if err := svc.DeleteCategory(category.ID); err != nil {
		t.Fatalf("expected delete to succeed once unreferenced, got %v", err)
	}
}

func TestListActiveGroupedSplitsByType(t *testing.T) {
	cleanup := setupProductTestDB(t)
	defer cleanup()

	svc := NewProductService(db.DB)
	category := seedProductCategory(t, "Everything")

	seed := []db.Product{
		{Name: "Flour", CategoryID: category.ID, ProductType: db.ProductTypeProcessed, IsActive: true},
		{Name: "Maize", CategoryID: category.ID, ProductType: db.ProductTypeRaw, IsActive: true},
		{Name: "Hidden", CategoryID: category.ID, ProductType: db.ProductTypeRaw, IsActive: false},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	groups, err := svc.ListActiveGrouped()
	if err != nil {
		t.Fatalf("ListActiveGrouped returned error: %v", err)
	}

	if len(groups.Processed) != 1 || groups.Processed[0].Name != "Flour" {
		t.Fatalf("unexpected processed group: %+v", groups.Processed)
	}
	if len(groups.Raw) != 1 || groups.Raw[0].Name != "Maize" {
		t.Fatalf("inactive products must be excluded, got: %+v", groups.Raw)
	}
	if groups.Processed[0].Category.Name != "Everything" {
		t.Fatal("expected category to be preloaded")
	}
}

func TestRelatedExcludesSelfAndCapsResults(t *testing.T) {
	cleanup := setupProductTestDB(t)
	defer cleanup()

	svc := NewProductService(db.DB)
	category := seedProductCategory(t, "Grains")

	var subject db.Product
	for i := 0; i < 6; i++ {
		product := db.Product{
			Name:        "Grain " + strconv.Itoa(i),
			CategoryID:  category.ID,
			ProductType: db.ProductTypeRaw,
			IsActive:    true,
		}
		if err := db.DB.Create(&product).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
		if i == 0 {
			subject = product
		}
	}

	related, err := svc.Related(&subject, 4)
	if err != nil {
		t.Fatalf("Related returned error: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("expected 4 related products, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == subject.ID {
			t.Fatal("related products must exclude the product itself")
		}
	}
}

func TestCreateRejectsUnknownTypeAndCategory(t *testing.T) {
	cleanup := setupProductTestDB(t)
	defer cleanup()

	svc := NewProductService(db.DB)
	category := seedProductCategory(t, "Grains")

	if _, err := svc.Create(ProductInput{Name: "X", CategoryID: category.ID, ProductType: "type9"}); !errors.Is(err, ErrProductTypeInvalid) {
		t.Fatalf("expected ErrProductTypeInvalid, got %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "X", CategoryID: 999, ProductType: db.ProductTypeRaw}); !errors.Is(err, ErrProductCategoryNotFound) {
		t.Fatalf("expected ErrProductCategoryNotFound, got %v", err)
	}
}
