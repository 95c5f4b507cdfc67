package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type PageService struct {
	PageRepo *repository.PageRepository
}

func NewPageService(pageRepo *repository.PageRepository) *PageService {
	return &PageService{PageRepo: pageRepo}
}

type PageRequest struct {
	Title           string         `json:"title" binding:"required"`
	Content         string         `json:"content"`
	PageType        model.PageType `json:"pageType"`
	IsLandingPage   *bool          `json:"isLandingPage"`
	IsPublished     *bool          `json:"isPublished"`
	IsInNavigation  *bool          `json:"isInNavigation"`
	NavigationOrder *int           `json:"navigationOrder"`
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
}

func validatePageType(t model.PageType) error {
	switch t {
	case "", model.PageLanding, model.PageAbout, model.PageContact, model.PageCustom:
		return nil
	}
	return util.NewValidationError("pageType", "unknown page type %q", t)
}

func (s *PageService) CreatePage(req PageRequest) (*model.Page, error) {
	if err := validatePageType(req.PageType); err != nil {
		return nil, err
	}

	pageType := req.PageType
	if pageType == "" {
		pageType = model.PageCustom
	}

	page := &model.Page{
		Title:           req.Title,
		Slug:            util.UniqueSlug(util.Slugify(req.Title), s.PageRepo.SlugExists),
		Content:         req.Content,
		PageType:        pageType,
		IsInNavigation:  true,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if req.IsInNavigation != nil {
		page.IsInNavigation = *req.IsInNavigation
	}
	if req.NavigationOrder != nil {
		page.NavigationOrder = *req.NavigationOrder
	}

	if err := s.PageRepo.Create(page); err != nil {
		return nil, err
	}

	if req.IsLandingPage != nil && *req.IsLandingPage {
		if err := s.setLanding(page); err != nil {
			return nil, err
		}
	}
	return page, nil
}

func (s *PageService) UpdatePage(id uint, req PageRequest) (*model.Page, error) {
	if err := validatePageType(req.PageType); err != nil {
		return nil, err
	}

	page, err := s.PageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != page.Title {
		page.Slug = util.UniqueSlug(util.Slugify(req.Title), func(slug string) bool {
			existing, err := s.PageRepo.FindBySlug(slug)
			return err == nil && existing.ID != page.ID
		})
	}
	page.Title = req.Title
	page.Content = req.Content
	if req.PageType != "" {
		page.PageType = req.PageType
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if req.IsInNavigation != nil {
		page.IsInNavigation = *req.IsInNavigation
	}
	if req.NavigationOrder != nil {
		page.NavigationOrder = *req.NavigationOrder
	}
	page.MetaTitle = req.MetaTitle
	page.MetaDescription = req.MetaDescription

	if err := s.PageRepo.Update(page); err != nil {
		return nil, err
	}

	if req.IsLandingPage != nil {
		if *req.IsLandingPage && !page.IsLandingPage {
			if err := s.setLanding(page); err != nil {
				return nil, err
			}
		} else if !*req.IsLandingPage && page.IsLandingPage {
			page.IsLandingPage = false
			if err := s.PageRepo.Update(page); err != nil {
				return nil, err
			}
		}
	}
	return page, nil
}

func (s *PageService) setLanding(page *model.Page) error {
	if err := s.PageRepo.ClearLandingFlag(page.ID); err != nil {
		return err
	}
	page.IsLandingPage = true
	return s.PageRepo.Update(page)
}

func (s *PageService) GetPage(id uint) (*model.Page, error) {
	return s.PageRepo.FindByID(id)
}

// GetPublishedBySlug serves the public site; drafts are invisible there.
func (s *PageService) GetPublishedBySlug(slug string) (*model.Page, error) {
	page, err := s.PageRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !page.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return page, nil
}

func (s *PageService) ListPages(publishedOnly bool) ([]model.Page, error) {
	return s.PageRepo.List(publishedOnly)
}

func (s *PageService) Navigation() ([]model.Page, error) {
	return s.PageRepo.ListNavigation()
}

// LandingPage returns the published landing page if one is designated.
func (s *PageService) LandingPage() (*model.Page, error) {
	pages, err := s.PageRepo.List(true)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		if pages[i].IsLandingPage {
			return &pages[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *PageService) DeletePage(id uint) error {
	if _, err := s.PageRepo.FindByID(id); err != nil {
		return err
	}
	return s.PageRepo.Delete(id)
}
