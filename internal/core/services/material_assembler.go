package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports"
	"github.com/kamal-hamza/tex2mat/pkg/logging"
)

// AssembleOptions controls how materials are created
type AssembleOptions struct {
	// Shader is the shader every material is created against (default "Standard").
	Shader string
	// Extension is the material file extension (default ".mat").
	Extension string
}

func (o AssembleOptions) normalize() AssembleOptions {
	if o.Shader == "" {
		o.Shader = domain.DefaultShader
	}
	o.Extension = normalizeExt(o.Extension, domain.DefaultMaterialExtension)
	return o
}

// MaterialAssembler turns texture groups into persisted materials
type MaterialAssembler struct {
	factory ports.MaterialFactory
	store   ports.AssetStore
	opts    AssembleOptions
	logger  *log.Logger
}

func NewMaterialAssembler(factory ports.MaterialFactory, store ports.AssetStore, opts AssembleOptions, logger *log.Logger) *MaterialAssembler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &MaterialAssembler{
		factory: factory,
		store:   store,
		opts:    opts.normalize(),
		logger:  logger,
	}
}

type AssembleRequest struct {
	Groups    domain.TextureSet
	OutputDir string
}

type AssembleResponse struct {
	Created []domain.CreatedMaterial
	Failed  string // Group key that stopped the pass, empty on success
}

// OutputPath returns where the material for key is written
func (s *MaterialAssembler) OutputPath(outputDir, key string) string {
	return filepath.Join(outputDir, key+s.opts.Extension)
}

// Build creates the material record for one group without persisting it
func (s *MaterialAssembler) Build(ctx context.Context, group *domain.TextureGroup) (*domain.MaterialRecord, error) {
	material, err := s.factory.NewMaterial(ctx, group.Key, s.opts.Shader)
	if err != nil {
		return nil, err
	}
	if material == nil || material.Shader.Name == "" {
		return nil, fmt.Errorf("%w: shader %q resolved to nothing", domain.ErrConfiguration, s.opts.Shader)
	}

	if group.BaseColor != nil {
		material.SetTexture(domain.SlotMainTex, *group.BaseColor)
	}
	if group.Normal != nil {
		material.SetTexture(domain.SlotBumpMap, *group.Normal)
		material.NormalMapEnabled = true
	}
	if group.MetallicSmoothness != nil {
		material.SetTexture(domain.SlotMetallicGlossMap, *group.MetallicSmoothness)
		material.MetallicMapEnabled = true
	}
	if group.Height != nil {
		material.SetTexture(domain.SlotParallaxMap, *group.Height)
	}

	return material, nil
}

// Execute builds and persists one material per group, in group key order.
// On failure the response still lists the materials already written.
func (s *MaterialAssembler) Execute(ctx context.Context, req AssembleRequest) (*AssembleResponse, error) {
	if !s.store.FolderExists(ctx, req.OutputDir) {
		return nil, fmt.Errorf("%w: output directory %s", domain.ErrNotFound, req.OutputDir)
	}

	resp := &AssembleResponse{}

	for _, key := range req.Groups.Keys() {
		group := req.Groups[key]

		material, err := s.Build(ctx, group)
		if err != nil {
			resp.Failed = key
			return resp, fmt.Errorf("failed to create material %s: %w", key, err)
		}

		path := s.OutputPath(req.OutputDir, key)
		if err := s.store.SaveMaterial(ctx, path, material); err != nil {
			resp.Failed = key
			return resp, fmt.Errorf("failed to save material %s: %w", key, err)
		}

		s.logger.Info("Material created at " + path)
		resp.Created = append(resp.Created, domain.CreatedMaterial{
			Key:    key,
			Path:   path,
			Record: material,
		})
	}

	return resp, nil
}
