package services

import (
	"context"
	"sync"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// ConvertService runs one full conversion pass: store paths, group, assemble.
// Passes never overlap; a second trigger while one runs is rejected.
type ConvertService struct {
	prefs     *PreferencesService
	grouper   *TextureGrouper
	assembler *MaterialAssembler
	mu        sync.Mutex
}

func NewConvertService(prefs *PreferencesService, grouper *TextureGrouper, assembler *MaterialAssembler) *ConvertService {
	return &ConvertService{
		prefs:     prefs,
		grouper:   grouper,
		assembler: assembler,
	}
}

type ConvertRequest struct {
	InputDir  string
	OutputDir string
}

type ConvertResponse struct {
	Grouping *GroupResponse
	Assembly *AssembleResponse
}

// Created returns the materials written during the pass, even a failed one
func (r *ConvertResponse) Created() []domain.CreatedMaterial {
	if r == nil || r.Assembly == nil {
		return nil
	}
	return r.Assembly.Created
}

// Execute runs the pass. The returned response is non-nil whenever the pass started,
// so callers can report partial results alongside the error.
func (s *ConvertService) Execute(ctx context.Context, req ConvertRequest) (*ConvertResponse, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrConversionInProgress
	}
	defer s.mu.Unlock()

	if err := s.prefs.Save(ctx, domain.Preferences{
		InputPath:  req.InputDir,
		OutputPath: req.OutputDir,
	}); err != nil {
		return nil, err
	}

	resp := &ConvertResponse{}

	grouping, err := s.grouper.Execute(ctx, GroupRequest{InputDir: req.InputDir})
	resp.Grouping = grouping
	if err != nil {
		return resp, err
	}

	assembly, err := s.assembler.Execute(ctx, AssembleRequest{
		Groups:    grouping.Groups,
		OutputDir: req.OutputDir,
	})
	resp.Assembly = assembly
	if err != nil {
		return resp, err
	}

	return resp, nil
}
