package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports/mocks"
)

type convertFixture struct {
	scanner *mocks.MockScanner
	store   *mocks.MockAssetStore
	prefs   *mocks.MockPreferenceStore
	svc     *ConvertService
}

func newConvertFixture(opts GroupOptions) *convertFixture {
	f := &convertFixture{
		scanner: mocks.NewMockScanner(),
		store:   mocks.NewMockAssetStore(),
		prefs:   mocks.NewMockPreferenceStore(),
	}
	f.svc = NewConvertService(
		NewPreferencesService(f.prefs),
		NewTextureGrouper(f.scanner, f.store, opts, nil),
		NewMaterialAssembler(mocks.NewMockMaterialFactory(domain.DefaultShader), f.store, AssembleOptions{}, nil),
	)
	return f
}

func TestConvertService_WallAndDoor(t *testing.T) {
	f := newConvertFixture(GroupOptions{})
	f.scanner.AddFiles("in", "Wall_BaseColor.png", "Wall_Normal.png", "Door_Height.png", "Wall_Specular.png")
	f.store.AddFolder("out")

	resp, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(resp.Created()); got != 2 {
		t.Fatalf("expected 2 materials, got %d", got)
	}

	wall, ok := f.store.Material(filepath.Join("out", "Wall.mat"))
	if !ok {
		t.Fatal("Wall.mat not written")
	}
	if _, ok := wall.Texture(domain.SlotMainTex); !ok {
		t.Error("Wall: _MainTex not set")
	}
	if _, ok := wall.Texture(domain.SlotBumpMap); !ok {
		t.Error("Wall: _BumpMap not set")
	}
	if !wall.NormalMapEnabled {
		t.Error("Wall: normal map keyword not enabled")
	}
	if len(wall.Slots) != 2 {
		t.Errorf("Wall: expected 2 slots, got %d", len(wall.Slots))
	}

	door, ok := f.store.Material(filepath.Join("out", "Door.mat"))
	if !ok {
		t.Fatal("Door.mat not written")
	}
	if _, ok := door.Texture(domain.SlotParallaxMap); !ok {
		t.Error("Door: _ParallaxMap not set")
	}
	if len(door.Slots) != 1 {
		t.Errorf("Door: expected 1 slot, got %d", len(door.Slots))
	}
	if door.NormalMapEnabled || door.MetallicMapEnabled {
		t.Error("Door: no keywords expected")
	}

	if len(resp.Grouping.Skipped) != 1 {
		t.Errorf("expected Wall_Specular.png to be skipped, got %v", resp.Grouping.Skipped)
	}
}

func TestConvertService_SavesPreferencesFirst(t *testing.T) {
	f := newConvertFixture(GroupOptions{})

	_, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "missing-in", OutputDir: "missing-out"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if v, _ := f.prefs.Value(domain.PrefKeyInputPath); v != "missing-in" {
		t.Errorf("input preference = %q, want missing-in", v)
	}
	if v, _ := f.prefs.Value(domain.PrefKeyOutputPath); v != "missing-out" {
		t.Errorf("output preference = %q, want missing-out", v)
	}
}

func TestConvertService_MissingOutput(t *testing.T) {
	f := newConvertFixture(GroupOptions{})
	f.scanner.AddFiles("in", "Rock_BaseColor.png")

	resp, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if resp == nil || resp.Grouping == nil {
		t.Fatal("expected grouping results alongside the error")
	}
	if len(resp.Created()) != 0 {
		t.Errorf("expected no materials, got %d", len(resp.Created()))
	}
}

func TestConvertService_EmptyInput(t *testing.T) {
	f := newConvertFixture(GroupOptions{})
	f.scanner.AddDir("in")
	f.store.AddFolder("out")

	resp, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Created()) != 0 {
		t.Errorf("expected no materials, got %d", len(resp.Created()))
	}
}

func TestConvertService_StrictStopsBeforeAssembly(t *testing.T) {
	f := newConvertFixture(GroupOptions{FailOnUnmatched: true})
	f.scanner.AddFiles("in", "Wall_BaseColor.png", "Wall_Specular.png")
	f.store.AddFolder("out")

	resp, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"})
	if !errors.Is(err, domain.ErrUnmatchedTexture) {
		t.Fatalf("expected ErrUnmatchedTexture, got %v", err)
	}
	if resp.Assembly != nil {
		t.Error("assembly ran after grouping failed")
	}
	if len(f.store.Saved()) != 0 {
		t.Errorf("expected nothing saved, got %v", f.store.Saved())
	}
}

func TestConvertService_RejectsOverlappingPass(t *testing.T) {
	f := newConvertFixture(GroupOptions{})
	f.scanner.AddDir("in")
	f.store.AddFolder("out")

	f.svc.mu.Lock()
	_, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"})
	f.svc.mu.Unlock()

	if !errors.Is(err, domain.ErrConversionInProgress) {
		t.Fatalf("expected ErrConversionInProgress, got %v", err)
	}
	if f.prefs.Writes != 0 {
		t.Error("rejected pass must not touch preferences")
	}

	if _, err := f.svc.Execute(context.Background(), ConvertRequest{InputDir: "in", OutputDir: "out"}); err != nil {
		t.Fatalf("pass after release failed: %v", err)
	}
}

func TestConvertResponse_CreatedNilSafe(t *testing.T) {
	var resp *ConvertResponse
	if resp.Created() != nil {
		t.Error("expected nil for nil response")
	}
	if (&ConvertResponse{}).Created() != nil {
		t.Error("expected nil without assembly")
	}
}
