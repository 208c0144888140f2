// Package theme persists the shell's display preference under the theme key.
package theme

import (
	"fmt"

	"go.uber.org/zap"

	apperrors "picko/internal/errors"
	"picko/internal/infrastructure/localstore"
)

const themeKey = "theme"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var validThemes = map[Theme]struct{}{
	ThemeLight:  {},
	ThemeDark:   {},
	ThemeSystem: {},
}

type Service struct {
	store    *localstore.Store
	fallback Theme
	logger   *zap.Logger
}

func NewService(store *localstore.Store, fallback string, logger *zap.Logger) *Service {
	theme := Theme(fallback)
	if _, ok := validThemes[theme]; !ok {
		theme = ThemeSystem
	}
	return &Service{
		store:    store,
		fallback: theme,
		logger:   logger,
	}
}

// Get returns the persisted theme, falling back to the configured default
// when nothing valid is stored.
func (s *Service) Get() Theme {
	data, ok, err := s.store.Get(themeKey)
	if err != nil {
		s.logger.Warn("failed to read theme, using fallback", zap.Error(err))
		return s.fallback
	}
	if !ok {
		return s.fallback
	}

	theme := Theme(data)
	if _, valid := validThemes[theme]; !valid {
		return s.fallback
	}
	return theme
}

func (s *Service) Set(theme Theme) error {
	if _, ok := validThemes[theme]; !ok {
		return apperrors.NewValidationError(fmt.Sprintf("unknown theme %q", theme))
	}
	if err := s.store.Set(themeKey, []byte(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	s.logger.Info("theme updated", zap.String("theme", string(theme)))
	return nil
}
