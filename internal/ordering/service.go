package ordering

import (
	"github.com/sdlcforge/makefwd/internal/config"
	"github.com/sdlcforge/makefwd/internal/model"
)

// Service handles directory and target ordering based on configuration.
type Service struct {
	config *config.Config
}

// NewService creates a new ordering service with the given configuration.
func NewService(config *config.Config) *Service {
	return &Service{
		config: config,
	}
}

// ApplyOrdering applies the configured ordering strategy to directories and
// targets. It modifies fm in place.
func (s *Service) ApplyOrdering(fm *model.ForwardingModel) error {
	if err := s.orderDirectories(fm); err != nil {
		return err
	}

	for i := range fm.Directories {
		s.orderTargets(&fm.Directories[i])
	}

	return nil
}

// orderDirectories applies the configured directory ordering strategy.
func (s *Service) orderDirectories(fm *model.ForwardingModel) error {
	if len(s.config.DirOrder) > 0 {
		return applyExplicitDirOrder(fm, s.config.DirOrder)
	}

	if s.config.KeepOrderDirs {
		sortDirectoriesByDiscoveryOrder(fm.Directories)
		return nil
	}

	sortDirectoriesAlphabetically(fm.Directories)
	return nil
}

// orderTargets applies the configured target ordering strategy to a
// directory. Targets are discovered in the order the `make -np` dump
// listed them, so --keep-order-targets simply leaves that order alone.
func (s *Service) orderTargets(dir *model.Directory) {
	if s.config.KeepOrderTargets {
		return
	}
	sortTargetsAlphabetically(dir.Targets)
}
