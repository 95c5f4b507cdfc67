package service

import (
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
)

type ContactService struct {
	InquiryRepo *repository.InquiryRepository
}

func NewContactService(inquiryRepo *repository.InquiryRepository) *ContactService {
	return &ContactService{InquiryRepo: inquiryRepo}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Subject string `json:"subject" binding:"required,max=100"`
	Message string `json:"message" binding:"required,max=5000"`
}

func (s *ContactService) Submit(req ContactRequest) (*model.ContactInquiry, error) {
	inquiry := &model.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.InquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *ContactService) ListInquiries(unreadOnly bool, page, limit int) ([]model.ContactInquiry, int64, error) {
	return s.InquiryRepo.List(unreadOnly, page, limit)
}

func (s *ContactService) GetInquiry(id uint) (*model.ContactInquiry, error) {
	return s.InquiryRepo.FindByID(id)
}

func (s *ContactService) UnreadCount() (int64, error) {
	return s.InquiryRepo.CountUnread()
}

func (s *ContactService) MarkRead(id uint) (*model.ContactInquiry, error) {
	inquiry, err := s.InquiryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !inquiry.IsRead {
		inquiry.IsRead = true
		if err := s.InquiryRepo.Update(inquiry); err != nil {
			return nil, err
		}
	}
	return inquiry, nil
}

// MarkReplied records that the inquiry was answered outside the system,
// with optional notes about the reply.
func (s *ContactService) MarkReplied(id uint, notes string) (*model.ContactInquiry, error) {
	inquiry, err := s.InquiryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inquiry.IsRead = true
	inquiry.IsReplied = true
	inquiry.RepliedAt = &now
	inquiry.ReplyNotes = notes
	if err := s.InquiryRepo.Update(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *ContactService) DeleteInquiry(id uint) error {
	if _, err := s.InquiryRepo.FindByID(id); err != nil {
		return err
	}
	return s.InquiryRepo.Delete(id)
}
