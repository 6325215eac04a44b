package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports"
)

// PreferencesService reads and writes the last-used conversion paths
type PreferencesService struct {
	store ports.PreferenceStore
}

func NewPreferencesService(store ports.PreferenceStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// Load returns the stored paths, falling back to the defaults
func (s *PreferencesService) Load(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	input, err := s.store.GetString(ctx, domain.PrefKeyInputPath, domain.DefaultInputPath)
	if err != nil {
		return prefs, fmt.Errorf("failed to read input path preference: %w", err)
	}
	output, err := s.store.GetString(ctx, domain.PrefKeyOutputPath, domain.DefaultOutputPath)
	if err != nil {
		return prefs, fmt.Errorf("failed to read output path preference: %w", err)
	}

	prefs.InputPath = input
	prefs.OutputPath = output
	return prefs, nil
}

// Save stores both paths
func (s *PreferencesService) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := s.store.SetString(ctx, domain.PrefKeyInputPath, prefs.InputPath); err != nil {
		return fmt.Errorf("failed to store input path preference: %w", err)
	}
	if err := s.store.SetString(ctx, domain.PrefKeyOutputPath, prefs.OutputPath); err != nil {
		return fmt.Errorf("failed to store output path preference: %w", err)
	}
	return nil
}
