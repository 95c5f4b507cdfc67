package model

// Homepage builder items. Each section stores an ordered list of small typed
// records as a JSON column; they are validated at the API boundary and never
// handled as loose maps.

type FeatureItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StatItem struct {
	Number string `json:"number"` // display string, e.g. "1000+"
	Label  string `json:"label"`
}

type TestimonialItem struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

type GalleryItem struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FooterLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SiteConfig is the singleton customization record for the whole site.
// swagger:model SiteConfig
type SiteConfig struct {
	BaseModel
	SiteName        string `gorm:"size:255;default:'My Learning Platform'" json:"siteName"`
	SiteDescription string `gorm:"type:text" json:"siteDescription"`
	SiteLogoURL     string `gorm:"size:500" json:"siteLogoUrl"`
	FaviconURL      string `gorm:"size:500" json:"faviconUrl"`

	PrimaryColor    string `gorm:"size:7;default:'#3b82f6'" json:"primaryColor"`
	SecondaryColor  string `gorm:"size:7;default:'#10b981'" json:"secondaryColor"`
	AccentColor     string `gorm:"size:7;default:'#f59e0b'" json:"accentColor"`
	BackgroundColor string `gorm:"size:7;default:'#ffffff'" json:"backgroundColor"`
	TextColor       string `gorm:"size:7;default:'#1f2937'" json:"textColor"`
	HeaderBgColor   string `gorm:"size:7;default:'#1f2937'" json:"headerBgColor"`
	HeaderTextColor string `gorm:"size:7;default:'#ffffff'" json:"headerTextColor"`
	FooterBgColor   string `gorm:"size:7;default:'#111827'" json:"footerBgColor"`
	FooterTextColor string `gorm:"size:7;default:'#9ca3af'" json:"footerTextColor"`

	FontFamily        string `gorm:"size:100;default:'Inter, sans-serif'" json:"fontFamily"`
	HeadingFontFamily string `gorm:"size:100;default:'Inter, sans-serif'" json:"headingFontFamily"`
	HeaderStyle       string `gorm:"size:50;default:'standard'" json:"headerStyle"`
	FooterStyle       string `gorm:"size:50;default:'standard'" json:"footerStyle"`

	ShowLandingPage   bool `gorm:"default:true" json:"showLandingPage"`
	RequireLogin      bool `gorm:"default:false" json:"requireLogin"`
	AllowRegistration bool `gorm:"default:true" json:"allowRegistration"`

	ContactEmail   string            `gorm:"size:255" json:"contactEmail"`
	ContactPhone   string            `gorm:"size:50" json:"contactPhone"`
	ContactAddress string            `gorm:"type:text" json:"contactAddress"`
	SocialLinks    map[string]string `gorm:"serializer:json;type:json" json:"socialLinks"`

	CustomCSS string `gorm:"type:text" json:"customCss"`
	CustomJS  string `gorm:"type:text" json:"customJs"`

	MetaKeywords    string `gorm:"type:text" json:"metaKeywords"`
	MetaDescription string `gorm:"type:text" json:"metaDescription"`

	IsSetupComplete bool `gorm:"default:false" json:"isSetupComplete"`

	// hero section
	HeroTitle           string `gorm:"size:255;default:'Welcome to Our Learning Platform'" json:"heroTitle"`
	HeroSubtitle        string `gorm:"type:text" json:"heroSubtitle"`
	HeroButtonText      string `gorm:"size:100;default:'Browse Courses'" json:"heroButtonText"`
	HeroButtonLink      string `gorm:"size:255;default:'/courses'" json:"heroButtonLink"`
	HeroButton2Text     string `gorm:"size:100;default:'Get Started Free'" json:"heroButton2Text"`
	HeroButton2Link     string `gorm:"size:255;default:'/register'" json:"heroButton2Link"`
	HeroBackgroundImage string `gorm:"size:500" json:"heroBackgroundImage"`
	HeroBackgroundColor string `gorm:"size:7" json:"heroBackgroundColor"`
	HeroStyle           string `gorm:"size:50;default:'centered'" json:"heroStyle"`

	// features section
	FeaturesTitle   string        `gorm:"size:255;default:'Why Choose Us'" json:"featuresTitle"`
	FeaturesEnabled bool          `gorm:"default:true" json:"featuresEnabled"`
	FeaturesItems   []FeatureItem `gorm:"serializer:json;type:json" json:"featuresItems"`

	// featured courses section
	CoursesSectionTitle   string `gorm:"size:255;default:'Featured Courses'" json:"coursesSectionTitle"`
	CoursesSectionEnabled bool   `gorm:"default:true" json:"coursesSectionEnabled"`
	CoursesMaxDisplay     int    `gorm:"default:6" json:"coursesMaxDisplay"`

	// CTA section
	CTATitle           string `gorm:"size:255;default:'Ready to Start Learning?'" json:"ctaTitle"`
	CTASubtitle        string `gorm:"type:text" json:"ctaSubtitle"`
	CTAButtonText      string `gorm:"size:100;default:'Get Started Today'" json:"ctaButtonText"`
	CTAButtonLink      string `gorm:"size:255;default:'/register'" json:"ctaButtonLink"`
	CTAEnabled         bool   `gorm:"default:true" json:"ctaEnabled"`
	CTABackgroundColor string `gorm:"size:7" json:"ctaBackgroundColor"`
	CTABackgroundImage string `gorm:"size:500" json:"ctaBackgroundImage"`

	// testimonials section
	TestimonialsTitle   string            `gorm:"size:255;default:'What Our Students Say'" json:"testimonialsTitle"`
	TestimonialsEnabled bool              `gorm:"default:false" json:"testimonialsEnabled"`
	TestimonialsItems   []TestimonialItem `gorm:"serializer:json;type:json" json:"testimonialsItems"`

	// stats section
	StatsEnabled bool       `gorm:"default:false" json:"statsEnabled"`
	StatsItems   []StatItem `gorm:"serializer:json;type:json" json:"statsItems"`

	// gallery section
	GalleryEnabled bool          `gorm:"default:false" json:"galleryEnabled"`
	GalleryItems   []GalleryItem `gorm:"serializer:json;type:json" json:"galleryItems"`

	// footer
	FooterText  string       `gorm:"type:text" json:"footerText"`
	FooterLinks []FooterLink `gorm:"serializer:json;type:json" json:"footerLinks"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
