package model

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// swagger:model MediaFile
type MediaFile struct {
	BaseModel
	Filename         string    `gorm:"size:255;not null" json:"filename"`
	OriginalFilename string    `gorm:"size:255;not null" json:"originalFilename"`
	FilePath         string    `gorm:"size:500;not null" json:"filePath"`
	FileURL          string    `gorm:"size:500;not null" json:"fileUrl"`
	FileType         MediaType `gorm:"size:50;not null;index" json:"fileType"`
	MimeType         string    `gorm:"size:100" json:"mimeType"`
	FileSize         int64     `json:"fileSize"`

	// image only
	Width  int `gorm:"default:0" json:"width,omitempty"`
	Height int `gorm:"default:0" json:"height,omitempty"`

	// video only
	DurationSeconds int    `gorm:"default:0" json:"durationSeconds,omitempty"`
	ThumbnailURL    string `gorm:"size:500" json:"thumbnailUrl,omitempty"`

	Folder       string `gorm:"size:255;default:'general';index" json:"folder"`
	AltText      string `gorm:"size:255" json:"altText"`
	Caption      string `gorm:"size:500" json:"caption"`
	UploadedByID uint   `gorm:"index;type:bigint unsigned" json:"uploadedById"`
	UploadedBy   *User  `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
}

func (MediaFile) TableName() string {
	return "media_files"
}
