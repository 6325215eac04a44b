package shader

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports"
)

// builtinShaders are always available
var builtinShaders = []domain.Shader{
	{Name: domain.DefaultShader, GUID: "0000000000000000f000000000000000"},
	{Name: "Standard (Specular setup)", GUID: "0000000000000000f000000000000000"},
}

// catalogFile is the TOML layout of a shader catalog:
//
//	[[shader]]
//	name = "Custom/Terrain"
//	guid = "5c1e4b6f0a2d4e3c9b7a8d6f5e4c3b2a"
type catalogFile struct {
	Shaders []struct {
		Name string `toml:"name"`
		GUID string `toml:"guid"`
	} `toml:"shader"`
}

// Catalog resolves shaders by name and creates materials against them
type Catalog struct {
	shaders map[string]domain.Shader
}

// NewCatalog returns a catalog holding the builtin shaders plus extra
func NewCatalog(extra ...domain.Shader) *Catalog {
	c := &Catalog{shaders: make(map[string]domain.Shader)}
	for _, s := range builtinShaders {
		c.shaders[s.Name] = s
	}
	for _, s := range extra {
		c.shaders[s.Name] = s
	}
	return c
}

// LoadCatalog reads extra shaders from a TOML file.
// An empty path or a missing file yields the builtin catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read shader catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse shader catalog %s: %v", domain.ErrConfiguration, path, err)
	}

	var extra []domain.Shader
	for _, s := range file.Shaders {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: shader catalog %s has an entry without a name", domain.ErrConfiguration, path)
		}
		extra = append(extra, domain.Shader{Name: name, GUID: s.GUID})
	}

	return NewCatalog(extra...), nil
}

var _ ports.MaterialFactory = (*Catalog)(nil)

// Find looks up a shader by name
func (c *Catalog) Find(name string) (domain.Shader, bool) {
	s, ok := c.shaders[name]
	return s, ok
}

// Names returns every known shader name, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.shaders))
	for n := range c.shaders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewMaterial creates an empty material bound to the named shader
func (c *Catalog) NewMaterial(ctx context.Context, name string, shader string) (*domain.MaterialRecord, error) {
	s, ok := c.Find(shader)
	if !ok {
		return nil, fmt.Errorf("%w: shader %q not found", domain.ErrConfiguration, shader)
	}
	return domain.NewMaterialRecord(name, s), nil
}
