package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rearmsite/internal/config"
	"github.com/rearmsite/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// 演示数据生成器
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	createEditor()
	createSiteChrome()
	createHeroes()
	createAboutContent()
	createServices()
	createProducts()
	createPosts()

	fmt.Println("演示数据生成完成！")
	fmt.Println("后台账号: admin (密码: admin123)")
}

// 创建编辑账号
func createEditor() {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		return
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.DB.Create(&db.User{Username: "admin", Password: string(hashedPassword)})

	fmt.Println("✅ 编辑账号创建完成")
}

// 创建导航栏与公司信息
func createSiteChrome() {
	var count int64
	db.DB.Model(&db.Navbar{}).Count(&count)
	if count == 0 {
		db.DB.Create(&db.Navbar{SiteName: "ReArm"})
	}

	db.DB.Model(&db.CompanyInfo{}).Count(&count)
	if count > 0 {
		fmt.Println("公司信息已存在，跳过创建")
		return
	}

	company := db.CompanyInfo{
		Name:         "ReArm Ltd",
		Address:      "Kigali, Rwanda",
		PhoneNumber1: "+250 788 000 000",
		Email:        "info@reaarm.com",
		SocialLinks: []db.SocialMedia{
			{Platform: db.PlatformTwitter, URL: "https://twitter.com/reaarm"},
			{Platform: db.PlatformLinkedIn, URL: "https://www.linkedin.com/company/reaarm"},
		},
	}
	db.DB.Create(&company)

	fmt.Println("✅ 导航栏与公司信息创建完成")
}

// 为每个页面创建头图横幅
func createHeroes() {
	var count int64
	db.DB.Model(&db.HeroSection{}).Count(&count)
	if count > 0 {
		fmt.Println("头图已存在，跳过创建")
		return
	}

	heroes := []db.HeroSection{
		{Page: db.HeroPageHome, Title: "Feeding the Future", Subtitle: "From farm to market", PrimaryCTAText: "Our Services", PrimaryCTALink: "services", SecondaryCTAText: "Book a Demo", SecondaryCTALink: "book_demo"},
		{Page: db.HeroPageServices, Title: "What We Do"},
		{Page: db.HeroPageProducts, Title: "Our Products"},
		{Page: db.HeroPageAbout, Title: "Who We Are"},
		{Page: db.HeroPageContact, Title: "Let's Talk"},
	}
	for i := range heroes {
		db.DB.Create(&heroes[i])
	}

	fmt.Println("✅ 页面头图创建完成")
}

// 创建关于页内容与团队
func createAboutContent() {
	var count int64
	db.DB.Model(&db.AboutSection{}).Count(&count)
	if count > 0 {
		fmt.Println("关于页内容已存在，跳过创建")
		return
	}

	db.DB.Create(&db.AboutSection{
		Title:    "About ReArm",
		Subtitle: "Post-harvest solutions for smallholder farmers",
		Content:  "We help farmers store, process and sell their harvest.",
		IsActive: true,
	})

	db.DB.Create(&db.Leadership{
		Name:        "Jeanne I.",
		Title:       "Chief Executive Officer",
		HomeExcerpt: "Our mission is to cut post-harvest losses in half.",
		FullBio:     "Jeanne founded the company after a decade in agricultural finance.",
		IsCEO:       true,
	})

	members := []db.TeamMember{
		{Name: "Eric N.", Position: "Head of Operations", SortOrder: 1, IsActive: true, ShowOnAbout: true},
		{Name: "Alice M.", Position: "Agronomist", SortOrder: 2, IsActive: true, ShowOnAbout: true},
	}
	for i := range members {
		db.DB.Create(&members[i])
	}

	fmt.Println("✅ 关于页内容创建完成")
}

// 创建服务
func createServices() {
	var count int64
	db.DB.Model(&db.Service{}).Count(&count)
	if count > 0 {
		fmt.Println("服务已存在，跳过创建")
		return
	}

	services := []db.Service{
		{Title: "Grain Storage", ShortDescription: "Hermetic storage close to the farm.", Content: "Community storage sites with controlled humidity.", IsFeatured: true},
		{Title: "Processing", ShortDescription: "Milling and packaging.", Content: "We process raw grain into market-ready flour.", IsFeatured: true},
		{Title: "Market Access", ShortDescription: "Aggregation and offtake.", Content: "We connect cooperatives with institutional buyers.", IsFeatured: true},
	}
	for i := range services {
		db.DB.Create(&services[i])
	}

	fmt.Println("✅ 服务创建完成")
}

// 创建产品分类与产品
func createProducts() {
	var count int64
	db.DB.Model(&db.Product{}).Count(&count)
	if count > 0 {
		fmt.Println("产品已存在，跳过创建")
		return
	}

	grains := db.ProductCategory{Name: "Grains"}
	db.DB.Create(&grains)

	products := []db.Product{
		{Name: "Maize Flour", CategoryID: grains.ID, ProductType: db.ProductTypeProcessed, Description: "Fortified maize flour.", IsFeatured: true, IsActive: true},
		{Name: "Dried Maize", CategoryID: grains.ID, ProductType: db.ProductTypeRaw, Description: "Grade one dried maize.", IsActive: true},
	}
	for i := range products {
		db.DB.Create(&products[i])
	}

	fmt.Println("✅ 产品创建完成")
}

// 创建博客分类与文章
func createPosts() {
	var count int64
	db.DB.Model(&db.Post{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	var author db.User
	if err := db.DB.First(&author).Error; err != nil {
		fmt.Println("找不到作者账号，跳过文章创建")
		return
	}

	farming := db.Category{Name: "Farming"}
	db.DB.Create(&farming)

	posts := []db.Post{
		{Title: "Cutting Post-Harvest Losses", Content: "Losses start in the field. **Dry early, dry well.**", IsPublished: true, AuthorID: author.ID, Categories: []db.Category{farming}},
		{Title: "Why Hermetic Storage Works", Content: "Oxygen, not time, spoils grain.", IsPublished: true, AuthorID: author.ID, Categories: []db.Category{farming}},
	}
	for i := range posts {
		db.DB.Create(&posts[i])
	}

	fmt.Println("✅ 文章创建完成")
}
