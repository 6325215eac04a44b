package services

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kamal-hamza/tex2mat/internal/adapters/filesystem"
	"github.com/kamal-hamza/tex2mat/internal/adapters/repository"
	"github.com/kamal-hamza/tex2mat/internal/adapters/shader"
	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports/mocks"
)

func TestConvertService_OnDisk(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "Textures")
	output := filepath.Join(root, "Materials")
	if err := os.MkdirAll(output, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"Wall_BaseColor.png",
		"sub/Wall_Normal.png",
		"Door_Height.png",
		"Wall_Specular.png",
		"_BaseColor.png",
		"Y_Normal.jpg",
	} {
		path := filepath.Join(input, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	store := repository.NewFileAssetStore()
	svc := NewConvertService(
		NewPreferencesService(mocks.NewMockPreferenceStore()),
		NewTextureGrouper(filesystem.NewScanner(), store, GroupOptions{}, nil),
		NewMaterialAssembler(shader.NewCatalog(), store, AssembleOptions{}, nil),
	)

	resp, err := svc.Execute(context.Background(), ConvertRequest{InputDir: input, OutputDir: output})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Grouping.Skipped) != 2 {
		t.Errorf("expected 2 skipped files, got %v", resp.Grouping.Skipped)
	}

	entries, err := os.ReadDir(output)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"Door.mat", "Door.mat.meta", "Wall.mat", "Wall.mat.meta"}
	if !slices.Equal(names, want) {
		t.Fatalf("expected %v in output, got %v", want, names)
	}

	wall, err := repository.DecodeMaterialFile(filepath.Join(output, "Wall.mat"))
	if err != nil {
		t.Fatalf("failed to decode Wall.mat: %v", err)
	}
	if len(wall.Slots) != 2 || !wall.NormalMapEnabled || wall.MetallicMapEnabled {
		t.Errorf("unexpected Wall material: %+v", wall)
	}
	if tex, _ := wall.Texture(domain.SlotBumpMap); tex.Path != filepath.Join(input, "sub", "Wall_Normal.png") {
		t.Errorf("unexpected _BumpMap %q", tex.Path)
	}
	if wall.Shader.Name != domain.DefaultShader {
		t.Errorf("unexpected shader %q", wall.Shader.Name)
	}

	door, err := repository.DecodeMaterialFile(filepath.Join(output, "Door.mat"))
	if err != nil {
		t.Fatalf("failed to decode Door.mat: %v", err)
	}
	if _, ok := door.Texture(domain.SlotParallaxMap); !ok || len(door.Slots) != 1 {
		t.Errorf("unexpected Door slots: %+v", door.Slots)
	}
	if door.NormalMapEnabled || door.MetallicMapEnabled {
		t.Error("Door: no keywords expected")
	}
}
