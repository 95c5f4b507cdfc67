package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type MediaRepository struct {
	DB *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{DB: db}
}

func (r *MediaRepository) Create(file *model.MediaFile) error {
	return r.DB.Create(file).Error
}

func (r *MediaRepository) FindByID(id uint) (*model.MediaFile, error) {
	var file model.MediaFile
	err := r.DB.First(&file, id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *MediaRepository) List(folder string, fileType model.MediaType, page, limit int) ([]model.MediaFile, int64, error) {
	var files []model.MediaFile
	var total int64

	query := r.DB.Model(&model.MediaFile{})
	if folder != "" {
		query = query.Where("folder = ?", folder)
	}
	if fileType != "" {
		query = query.Where("file_type = ?", fileType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&files).Error
	return files, total, err
}

func (r *MediaRepository) Update(file *model.MediaFile) error {
	return r.DB.Save(file).Error
}

func (r *MediaRepository) Delete(id uint) error {
	return r.DB.Delete(&model.MediaFile{}, id).Error
}
