package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type SiteConfigRepository struct {
	DB *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) *SiteConfigRepository {
	return &SiteConfigRepository{DB: db}
}

// Get returns the singleton config row, creating it if migration seeding was
// skipped.
func (r *SiteConfigRepository) Get() (*model.SiteConfig, error) {
	var cfg model.SiteConfig
	err := r.DB.First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = model.SiteConfig{SiteName: "My Learning Platform"}
		if err := r.DB.Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SiteConfigRepository) Save(cfg *model.SiteConfig) error {
	return r.DB.Save(cfg).Error
}
