package services

import (
	"context"
	"testing"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports/mocks"
)

func TestPreferencesService_LoadDefaults(t *testing.T) {
	svc := NewPreferencesService(mocks.NewMockPreferenceStore())

	prefs, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs != domain.DefaultPreferences() {
		t.Errorf("expected defaults, got %+v", prefs)
	}
}

func TestPreferencesService_SaveLoad(t *testing.T) {
	store := mocks.NewMockPreferenceStore()
	svc := NewPreferencesService(store)
	ctx := context.Background()

	want := domain.Preferences{InputPath: "Assets/Art/Rocks", OutputPath: "Assets/Art/Materials"}
	if err := svc.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if v, _ := store.Value(domain.PrefKeyInputPath); v != want.InputPath {
		t.Errorf("stored input path = %q", v)
	}
	if store.Writes != 2 {
		t.Errorf("expected 2 writes, got %d", store.Writes)
	}
}
