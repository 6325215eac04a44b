package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports"
	"github.com/kamal-hamza/tex2mat/pkg/logging"
)

// DefaultTextureExtension is the only image extension scanned unless configured otherwise
const DefaultTextureExtension = ".png"

// GroupOptions controls classification policy
type GroupOptions struct {
	// Extension filters scanned files (default ".png"), compared case-insensitively.
	Extension string
	// FailOnUnmatched fails the pass on files with no recognised suffix instead of skipping them.
	FailOnUnmatched bool
	// FailOnDuplicate fails the pass when two files fill the same role of a group
	// instead of keeping the last one.
	FailOnDuplicate bool
}

func (o GroupOptions) normalize() GroupOptions {
	o.Extension = normalizeExt(o.Extension, DefaultTextureExtension)
	return o
}

// TextureGrouper scans an input tree and groups textures by material name
type TextureGrouper struct {
	scanner ports.DirectoryScanner
	store   ports.AssetStore
	opts    GroupOptions
	logger  *log.Logger
}

func NewTextureGrouper(scanner ports.DirectoryScanner, store ports.AssetStore, opts GroupOptions, logger *log.Logger) *TextureGrouper {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TextureGrouper{
		scanner: scanner,
		store:   store,
		opts:    opts.normalize(),
		logger:  logger,
	}
}

type GroupRequest struct {
	InputDir string
}

type GroupResponse struct {
	Groups     domain.TextureSet
	Files      int                // Files with the texture extension
	Skipped    []string           // Files with no recognised suffix
	Overwrites []domain.Overwrite // Roles filled more than once
}

// Execute classifies every texture under req.InputDir
func (s *TextureGrouper) Execute(ctx context.Context, req GroupRequest) (*GroupResponse, error) {
	files, err := s.scanner.Scan(ctx, req.InputDir, s.opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	resp := &GroupResponse{
		Groups: make(domain.TextureSet),
		Files:  len(files),
	}

	for _, path := range files {
		key, role, ok := domain.Classify(domain.BaseName(path))
		if !ok {
			if s.opts.FailOnUnmatched {
				return resp, fmt.Errorf("%w: %s (expected one of %s)",
					domain.ErrUnmatchedTexture, path, strings.Join(domain.Suffixes(), ", "))
			}
			s.logger.Debug("skipping texture", "path", path)
			resp.Skipped = append(resp.Skipped, path)
			continue
		}

		asset, err := s.store.LoadImage(ctx, path)
		if err != nil {
			return resp, fmt.Errorf("failed to load %s: %w", path, err)
		}

		group := resp.Groups.Group(key)
		if prev := group.Get(role); prev != nil {
			if s.opts.FailOnDuplicate {
				return resp, fmt.Errorf("%w: %s %s is filled by both %s and %s",
					domain.ErrDuplicateRole, key, role, prev.Path, path)
			}
			s.logger.Debug("replacing texture", "group", key, "role", role, "previous", prev.Path, "path", path)
			resp.Overwrites = append(resp.Overwrites, domain.Overwrite{
				Key:      key,
				Role:     role,
				Previous: prev.Path,
				Current:  path,
			})
		}
		group.Set(role, asset)
	}

	s.logger.Debug("grouped textures", "dir", req.InputDir, "files", len(files), "groups", len(resp.Groups))
	return resp, nil
}

// normalizeExt ensures ext starts with a dot, substituting def when blank
func normalizeExt(ext, def string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return def
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
