package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	DB *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{DB: db}
}

func (r *InquiryRepository) Create(inquiry *model.ContactInquiry) error {
	return r.DB.Create(inquiry).Error
}

func (r *InquiryRepository) FindByID(id uint) (*model.ContactInquiry, error) {
	var inquiry model.ContactInquiry
	err := r.DB.First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) List(unreadOnly bool, page, limit int) ([]model.ContactInquiry, int64, error) {
	var inquiries []model.ContactInquiry
	var total int64

	query := r.DB.Model(&model.ContactInquiry{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&inquiries).Error
	return inquiries, total, err
}

func (r *InquiryRepository) Update(inquiry *model.ContactInquiry) error {
	return r.DB.Save(inquiry).Error
}

func (r *InquiryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ContactInquiry{}, id).Error
}

func (r *InquiryRepository) CountUnread() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ContactInquiry{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
