package model

type PageType string

const (
	PageLanding PageType = "landing"
	PageAbout   PageType = "about"
	PageContact PageType = "contact"
	PageCustom  PageType = "custom"
)

// swagger:model Page
type Page struct {
	BaseModel
	Title           string   `gorm:"size:255;not null" json:"title"`
	Slug            string   `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content         string   `gorm:"type:text" json:"content"`
	PageType        PageType `gorm:"size:50;default:'custom'" json:"pageType"`
	IsLandingPage   bool     `gorm:"default:false" json:"isLandingPage"`
	IsPublished     bool     `gorm:"default:false" json:"isPublished"`
	IsInNavigation  bool     `gorm:"default:true" json:"isInNavigation"`
	NavigationOrder int      `gorm:"default:0" json:"navigationOrder"`
	MetaTitle       string   `gorm:"size:255" json:"metaTitle"`
	MetaDescription string   `gorm:"type:text" json:"metaDescription"`
}

func (Page) TableName() string {
	return "pages"
}
