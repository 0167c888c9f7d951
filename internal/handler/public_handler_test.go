package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rearmsite/internal/db"
)

func seedAuthor(t *testing.T, ts *testServer) db.User {
	t.Helper()

	user := db.User{Username: "editor", Password: "hashed"}
	if err := ts.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestShowHomeExcludesDrafts(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	published := db.Post{Title: "Harvest Season Update", Content: "内容", IsPublished: true, AuthorID: author.ID}
	if err := ts.db.Create(&published).Error; err != nil {
		t.Fatalf("failed to create published post: %v", err)
	}
	draft := db.Post{Title: "Unfinished Draft", Content: "草稿", IsPublished: false, AuthorID: author.ID}
	if err := ts.db.Create(&draft).Error; err != nil {
		t.Fatalf("failed to create draft post: %v", err)
	}

	rr := ts.get(t, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	body := rr.Body.String()
	if !strings.Contains(body, published.Title) {
		t.Fatalf("expected response to include published post title")
	}
	if strings.Contains(body, draft.Title) {
		t.Fatalf("draft post should not appear on public home")
	}
}

func TestShowHomeCarriesGlobalContext(t *testing.T) {
	ts := setupHandlerTest(t)

	if err := ts.db.Create(&db.Navbar{SiteName: "ReArm"}).Error; err != nil {
		t.Fatalf("failed to seed navbar: %v", err)
	}
	hero := db.HeroSection{Page: db.HeroPageHome, Title: "Feeding the Future"}
	if err := ts.db.Create(&hero).Error; err != nil {
		t.Fatalf("failed to seed hero: %v", err)
	}

	rr := ts.get(t, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		PageName string `json:"page_name"`
		Global   struct {
			Navbar struct {
				SiteName string `json:"SiteName"`
			} `json:"navbar"`
			HeroSections map[string]json.RawMessage `json:"hero_sections"`
			CurrentYear  int                        `json:"current_year"`
		} `json:"global"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode home payload: %v", err)
	}

	if payload.PageName != db.HeroPageHome {
		t.Fatalf("expected page_name %q, got %q", db.HeroPageHome, payload.PageName)
	}
	if payload.Global.Navbar.SiteName != "ReArm" {
		t.Fatalf("expected navbar site name, got %q", payload.Global.Navbar.SiteName)
	}
	if _, ok := payload.Global.HeroSections[db.HeroPageHome]; !ok {
		t.Fatalf("expected hero section keyed by page, got %v", payload.Global.HeroSections)
	}
	if payload.Global.CurrentYear < 2024 {
		t.Fatalf("unexpected current year %d", payload.Global.CurrentYear)
	}
}

func TestListPostsPaginatesByNine(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	for i := 1; i <= 12; i++ {
		post := db.Post{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d", i),
			Content:     "内容",
			IsPublished: true,
			AuthorID:    author.ID,
		}
		if err := ts.db.Create(&post).Error; err != nil {
			t.Fatalf("failed to seed post %d: %v", i, err)
		}
	}

	rr := ts.get(t, "/posts/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var payload struct {
		Posts      []json.RawMessage `json:"posts"`
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode posts payload: %v", err)
	}
	if len(payload.Posts) != 9 {
		t.Fatalf("expected 9 posts on first page, got %d", len(payload.Posts))
	}
	if payload.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", payload.TotalPages)
	}

	rr = ts.get(t, "/posts/?page=2")
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode second page: %v", err)
	}
	if len(payload.Posts) != 3 {
		t.Fatalf("expected 3 posts on second page, got %d", len(payload.Posts))
	}
	if payload.Page != 2 {
		t.Fatalf("expected page 2, got %d", payload.Page)
	}
}

func TestShowPostRendersSanitizedContent(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	post := db.Post{
		Title:       "Ready to Read",
		Content:     "A **bold** statement.\n\n<script>alert(1)</script>",
		IsPublished: true,
		AuthorID:    author.ID,
	}
	if err := ts.db.Create(&post).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	rr := ts.get(t, "/post/"+post.Slug+"/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		ContentHTML string `json:"content_html"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode post payload: %v", err)
	}
	if !strings.Contains(payload.ContentHTML, "<strong>bold</strong>") {
		t.Fatalf("expected rendered markdown, got %q", payload.ContentHTML)
	}
	if strings.Contains(payload.ContentHTML, "<script>") {
		t.Fatalf("expected script tags to be stripped, got %q", payload.ContentHTML)
	}
}

func TestShowPostHidesDraftsAndUnknownSlugs(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	draft := db.Post{Title: "Secret Draft", Content: "草稿", IsPublished: false, AuthorID: author.ID}
	if err := ts.db.Create(&draft).Error; err != nil {
		t.Fatalf("failed to seed draft: %v", err)
	}

	for _, slug := range []string{draft.Slug, "missing-post"} {
		rr := ts.get(t, "/post/"+slug+"/")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %q, got %d", slug, rr.Code)
		}
	}
}

func TestListCategoryPostsFilters(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	farming := db.Category{Name: "Farming"}
	if err := ts.db.Create(&farming).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	inside := db.Post{Title: "Inside Farming", Content: "内容", IsPublished: true, AuthorID: author.ID, Categories: []db.Category{farming}}
	if err := ts.db.Create(&inside).Error; err != nil {
		t.Fatalf("failed to seed categorized post: %v", err)
	}
	outside := db.Post{Title: "Outside Topic", Content: "内容", IsPublished: true, AuthorID: author.ID}
	if err := ts.db.Create(&outside).Error; err != nil {
		t.Fatalf("failed to seed uncategorized post: %v", err)
	}

	rr := ts.get(t, "/category/"+farming.Slug+"/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	body := rr.Body.String()
	if !strings.Contains(body, inside.Title) {
		t.Fatalf("expected categorized post in response")
	}
	// recent_posts 侧栏会包含全部最新文章，只检查分页主列表
	var payload struct {
		Posts []struct {
			Title string `json:"Title"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode category payload: %v", err)
	}
	if len(payload.Posts) != 1 || payload.Posts[0].Title != inside.Title {
		t.Fatalf("expected only categorized post in list, got %v", payload.Posts)
	}

	rr = ts.get(t, "/category/missing-category/")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", rr.Code)
	}
}

func TestShowHomeListsAllPublishedPosts(t *testing.T) {
	ts := setupHandlerTest(t)
	author := seedAuthor(t, ts)

	for i := 1; i <= 12; i++ {
		post := db.Post{Title: fmt.Sprintf("Field Report %d", i), Content: "内容", IsPublished: true, AuthorID: author.ID}
		if err := ts.db.Create(&post).Error; err != nil {
			t.Fatalf("failed to create post %d: %v", i, err)
		}
	}

	rr := ts.get(t, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		Posts         []json.RawMessage `json:"posts"`
		FeaturedPosts []json.RawMessage `json:"featured_posts"`
		RecentPosts   []json.RawMessage `json:"recent_posts"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode home payload: %v", err)
	}

	if len(payload.Posts) != 12 {
		t.Fatalf("expected full post list of 12, got %d", len(payload.Posts))
	}
	if len(payload.FeaturedPosts) != 3 {
		t.Fatalf("expected 3 featured posts, got %d", len(payload.FeaturedPosts))
	}
	if len(payload.RecentPosts) != 3 {
		t.Fatalf("expected 3 recent posts, got %d", len(payload.RecentPosts))
	}
}
