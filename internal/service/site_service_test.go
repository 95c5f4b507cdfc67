package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSiteConfig() *model.SiteConfig {
	return &model.SiteConfig{
		SiteName:          "My Learning Platform",
		PrimaryColor:      "#3b82f6",
		CoursesMaxDisplay: 6,
	}
}

func TestValidateSiteConfigValid(t *testing.T) {
	assert.NoError(t, ValidateSiteConfig(validSiteConfig()))
}

func TestValidateSiteConfigColors(t *testing.T) {
	cfg := validSiteConfig()
	cfg.PrimaryColor = "blue"
	cfg.AccentColor = "#ff00"

	err := ValidateSiteConfig(cfg)
	require.Error(t, err)

	ve, ok := util.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Violations, 2)
}

func TestValidateSiteConfigEmptyColorsAllowed(t *testing.T) {
	cfg := validSiteConfig()
	cfg.HeroBackgroundColor = ""
	cfg.CTABackgroundColor = ""

	assert.NoError(t, ValidateSiteConfig(cfg))
}

func TestValidateSiteConfigHomepageItems(t *testing.T) {
	cfg := validSiteConfig()
	cfg.FeaturesItems = []model.FeatureItem{{Icon: "star"}}                 // missing title
	cfg.StatsItems = []model.StatItem{{Number: "100+"}}                     // missing label
	cfg.TestimonialsItems = []model.TestimonialItem{{Name: "Alex"}}        // missing text
	cfg.GalleryItems = []model.GalleryItem{{Title: "pic"}}                 // missing url
	cfg.FooterLinks = []model.FooterLink{{Title: "About"}}                 // missing url

	err := ValidateSiteConfig(cfg)
	require.Error(t, err)

	ve, ok := util.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Violations, 5)
}

func TestValidateSiteConfigRequiresName(t *testing.T) {
	cfg := validSiteConfig()
	cfg.SiteName = ""

	assert.Error(t, ValidateSiteConfig(cfg))
}

func TestValidateSiteConfigCoursesMaxDisplay(t *testing.T) {
	cfg := validSiteConfig()
	cfg.CoursesMaxDisplay = 0
	assert.Error(t, ValidateSiteConfig(cfg))

	cfg.CoursesMaxDisplay = 25
	assert.Error(t, ValidateSiteConfig(cfg))

	cfg.CoursesMaxDisplay = 12
	assert.NoError(t, ValidateSiteConfig(cfg))
}
