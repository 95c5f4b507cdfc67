package database

import (
	"fmt"
	"log"

	"lms_backend/internal/config"
	"lms_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.LessonProgress{},
		&model.QuizAttempt{},
		&model.SiteConfig{},
		&model.Page{},
		&model.MediaFile{},
		&model.ContactInquiry{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// a single site config row must always exist
	var count int64
	db.Model(&model.SiteConfig{}).Count(&count)
	if count == 0 {
		db.Create(&model.SiteConfig{
			SiteName:              "My Learning Platform",
			HeroSubtitle:          "Start your learning journey today with our expert-led courses.",
			CTASubtitle:           "Join thousands of students already learning on our platform.",
			FooterText:            "© 2025 All rights reserved.",
			ShowLandingPage:       true,
			AllowRegistration:     true,
			FeaturesEnabled:       true,
			CoursesSectionEnabled: true,
			CTAEnabled:            true,
			CoursesMaxDisplay:     6,
		})
	}

	// default pages referenced from the stock navigation
	var pageCount int64
	db.Model(&model.Page{}).Count(&pageCount)
	if pageCount == 0 {
		defaultPages := []model.Page{
			{Title: "About Us", Slug: "about", PageType: model.PageAbout, IsPublished: true, NavigationOrder: 1},
			{Title: "Contact", Slug: "contact", PageType: model.PageContact, IsPublished: true, NavigationOrder: 2},
		}
		for _, p := range defaultPages {
			db.Create(&p)
		}
	}

	return db, nil
}
