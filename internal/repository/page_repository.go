package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type PageRepository struct {
	DB *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{DB: db}
}

func (r *PageRepository) Create(page *model.Page) error {
	return r.DB.Create(page).Error
}

func (r *PageRepository) FindByID(id uint) (*model.Page, error) {
	var page model.Page
	err := r.DB.First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) FindBySlug(slug string) (*model.Page, error) {
	var page model.Page
	err := r.DB.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) SlugExists(slug string) bool {
	var count int64
	r.DB.Model(&model.Page{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}

func (r *PageRepository) List(publishedOnly bool) ([]model.Page, error) {
	var pages []model.Page
	query := r.DB.Model(&model.Page{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("navigation_order asc, created_at asc").Find(&pages).Error
	return pages, err
}

// ListNavigation returns the published pages that belong in the site menu.
func (r *PageRepository) ListNavigation() ([]model.Page, error) {
	var pages []model.Page
	err := r.DB.Where("is_published = ? AND is_in_navigation = ?", true, true).
		Order("navigation_order asc, created_at asc").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) Update(page *model.Page) error {
	return r.DB.Save(page).Error
}

func (r *PageRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Page{}, id).Error
}

// ClearLandingFlag unsets the landing flag everywhere else; only one page may
// be the landing page.
func (r *PageRepository) ClearLandingFlag(exceptID uint) error {
	return r.DB.Model(&model.Page{}).Where("id <> ?", exceptID).
		Update("is_landing_page", false).Error
}
