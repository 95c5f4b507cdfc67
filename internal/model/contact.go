package model

import "time"

// ContactInquiry stores contact form submissions from visitors.
// swagger:model ContactInquiry
type ContactInquiry struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:100;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	IsRead     bool       `gorm:"default:false;index" json:"isRead"`
	IsReplied  bool       `gorm:"default:false" json:"isReplied"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
	ReplyNotes string     `gorm:"type:text" json:"replyNotes"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}
