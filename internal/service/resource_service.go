package service

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/resource"
	"studyhub/internal/view"
)

// ResourceService serves the resource list. It is loaded once at startup
// and read-only afterwards.
type ResourceService struct {
	repo repository.ResourceRepo
	log  *zap.Logger

	once      sync.Once
	resources []model.Resource
}

// NewResourceService creates a new resource service
func NewResourceService(repo repository.ResourceRepo, log *zap.Logger) *ResourceService {
	return &ResourceService{
		repo: repo,
		log:  log,
	}
}

// Load reads the resources from storage, falling back to the built-in
// list when storage is empty or unreachable. Only the first call loads.
func (s *ResourceService) Load(ctx context.Context) {
	s.once.Do(func() {
		list, err := s.repo.List(ctx)
		switch {
		case err != nil:
			s.log.Warn("loading resources failed, using defaults", zap.Error(err))
			list = resource.Defaults
		case len(list) == 0:
			s.log.Info("no stored resources, using defaults")
			list = resource.Defaults
		}
		s.resources = slices.Clone(list)
		s.log.Info("resources loaded", zap.Int("count", len(s.resources)))
	})
}

// List returns a copy of the resources in display order
func (s *ResourceService) List() []model.Resource {
	return slices.Clone(s.resources)
}

// Render fills the page's resource container, if it has one
func (s *ResourceService) Render(page *view.Page) int {
	return resource.Render(page, s.resources)
}
