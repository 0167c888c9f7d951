package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/db"
	"github.com/rearmsite/internal/handler"
	"github.com/rearmsite/internal/router"
	"github.com/rearmsite/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSchedulerURL = "https://meet.example.com/demo"

var ginOnce sync.Once

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	media  storage.Storage
}

func setupHandlerTest(t *testing.T) *testServer {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Category{},
		&db.Post{},
		&db.Service{},
		&db.ProductCategory{},
		&db.Product{},
		&db.TeamMember{},
		&db.Leadership{},
		&db.AboutSection{},
		&db.CompanyInfo{},
		&db.SocialMedia{},
		&db.HeroSection{},
		&db.Navbar{},
		&db.NewsletterSubscriber{},
		&db.PartnershipRequest{},
		&db.DemoBooking{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	media := storage.NewLocal(t.TempDir(), "/media")
	api := handler.NewAPI(gdb, media, testSchedulerURL, zerolog.Nop())
	r := router.SetupRouter(api, "test-secret", "", "")

	return &testServer{router: r, db: gdb, media: media}
}

// postForm 以表单编码提交请求，xhr 控制是否附带同站 XHR 标头。
func (ts *testServer) postForm(t *testing.T, path string, values url.Values, xhr bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if xhr {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}
