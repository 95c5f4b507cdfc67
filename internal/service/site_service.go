package service

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const siteConfigCacheKey = "site:config"

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type SiteService struct {
	SiteConfigRepo *repository.SiteConfigRepository
	Redis          *redis.Client
}

func NewSiteService(siteConfigRepo *repository.SiteConfigRepository, rdb *redis.Client) *SiteService {
	return &SiteService{SiteConfigRepo: siteConfigRepo, Redis: rdb}
}

// GetConfig returns the site configuration, preferring the redis copy since
// every page render of the frontend requests it.
func (s *SiteService) GetConfig(ctx context.Context) (*model.SiteConfig, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, siteConfigCacheKey).Result(); err == nil {
			var cfg model.SiteConfig
			if json.Unmarshal([]byte(cached), &cfg) == nil {
				return &cfg, nil
			}
		}
	}

	cfg, err := s.SiteConfigRepo.Get()
	if err != nil {
		return nil, err
	}
	s.cache(ctx, cfg)
	return cfg, nil
}

func (s *SiteService) cache(ctx context.Context, cfg *model.SiteConfig) {
	if s.Redis == nil {
		return
	}
	if payload, err := json.Marshal(cfg); err == nil {
		s.Redis.Set(ctx, siteConfigCacheKey, payload, 5*time.Minute)
	}
}

func checkColor(ve *util.ValidationError, field, value string) {
	if value != "" && !hexColorRe.MatchString(value) {
		ve.Add(field, "must be a hex color like #3b82f6")
	}
}

// ValidateSiteConfig checks the color and structured parts of the config:
// every color must be a six-digit hex value and every homepage item must
// carry its required text.
func ValidateSiteConfig(cfg *model.SiteConfig) error {
	ve := &util.ValidationError{}

	if cfg.SiteName == "" {
		ve.Add("siteName", "is required")
	}

	colors := map[string]string{
		"primaryColor":        cfg.PrimaryColor,
		"secondaryColor":      cfg.SecondaryColor,
		"accentColor":         cfg.AccentColor,
		"backgroundColor":     cfg.BackgroundColor,
		"textColor":           cfg.TextColor,
		"headerBgColor":       cfg.HeaderBgColor,
		"headerTextColor":     cfg.HeaderTextColor,
		"footerBgColor":       cfg.FooterBgColor,
		"footerTextColor":     cfg.FooterTextColor,
		"heroBackgroundColor": cfg.HeroBackgroundColor,
		"ctaBackgroundColor":  cfg.CTABackgroundColor,
	}
	for field, value := range colors {
		checkColor(ve, field, value)
	}

	for i, item := range cfg.FeaturesItems {
		if item.Title == "" {
			ve.Add("featuresItems", "item %d: title is required", i)
		}
	}
	for i, item := range cfg.StatsItems {
		if item.Number == "" || item.Label == "" {
			ve.Add("statsItems", "item %d: number and label are required", i)
		}
	}
	for i, item := range cfg.TestimonialsItems {
		if item.Name == "" || item.Text == "" {
			ve.Add("testimonialsItems", "item %d: name and text are required", i)
		}
	}
	for i, item := range cfg.GalleryItems {
		if item.URL == "" {
			ve.Add("galleryItems", "item %d: url is required", i)
		}
	}
	for i, link := range cfg.FooterLinks {
		if link.Title == "" || link.URL == "" {
			ve.Add("footerLinks", "item %d: title and url are required", i)
		}
	}

	if cfg.CoursesMaxDisplay < 1 || cfg.CoursesMaxDisplay > 24 {
		ve.Add("coursesMaxDisplay", "must be between 1 and 24")
	}

	return ve.OrNil()
}

// UpdateConfig replaces the singleton config with the submitted one, keeping
// the stored identity and setup flag.
func (s *SiteService) UpdateConfig(ctx context.Context, incoming *model.SiteConfig) (*model.SiteConfig, error) {
	current, err := s.SiteConfigRepo.Get()
	if err != nil {
		return nil, err
	}

	incoming.ID = current.ID
	incoming.CreatedAt = current.CreatedAt
	incoming.IsSetupComplete = current.IsSetupComplete

	if err := ValidateSiteConfig(incoming); err != nil {
		return nil, err
	}
	if err := s.SiteConfigRepo.Save(incoming); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, siteConfigCacheKey)
	}
	s.cache(ctx, incoming)
	return incoming, nil
}
