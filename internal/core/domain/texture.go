package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// RoleKey identifies the material slot a texture fills
type RoleKey int

const (
	RoleBaseColor RoleKey = iota
	RoleNormalMap
	RoleMetallicSmoothness
	RoleHeight
)

// roleSuffix pairs a filename suffix with the role it selects
type roleSuffix struct {
	Suffix string
	Role   RoleKey
}

// suffixTable is checked in order; the first matching suffix wins.
var suffixTable = []roleSuffix{
	{Suffix: "_BaseColor", Role: RoleBaseColor},
	{Suffix: "_Normal", Role: RoleNormalMap},
	{Suffix: "_MetallicSmooth", Role: RoleMetallicSmoothness},
	{Suffix: "_Height", Role: RoleHeight},
}

// Roles returns every role in classification priority order
func Roles() []RoleKey {
	roles := make([]RoleKey, len(suffixTable))
	for i, rs := range suffixTable {
		roles[i] = rs.Role
	}
	return roles
}

// Suffixes returns the recognised filename suffixes in priority order
func Suffixes() []string {
	suffixes := make([]string, len(suffixTable))
	for i, rs := range suffixTable {
		suffixes[i] = rs.Suffix
	}
	return suffixes
}

func (r RoleKey) String() string {
	switch r {
	case RoleBaseColor:
		return "BaseColor"
	case RoleNormalMap:
		return "Normal"
	case RoleMetallicSmoothness:
		return "MetallicSmooth"
	case RoleHeight:
		return "Height"
	default:
		return "Unknown"
	}
}

// Suffix returns the filename suffix that selects the role
func (r RoleKey) Suffix() string {
	for _, rs := range suffixTable {
		if rs.Role == r {
			return rs.Suffix
		}
	}
	return ""
}

// Classify matches a base name (extension already stripped) against the suffix table.
// It returns the group key with the suffix removed and the matched role.
// ok is false when no suffix matches or the remaining group key would be empty.
func Classify(baseName string) (key string, role RoleKey, ok bool) {
	for _, rs := range suffixTable {
		if strings.HasSuffix(baseName, rs.Suffix) {
			key = strings.TrimSuffix(baseName, rs.Suffix)
			if key == "" {
				return "", 0, false
			}
			return key, rs.Role, true
		}
	}
	return "", 0, false
}

// BaseName returns the file name of path without directory and extension
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ImageAsset is a reference to an image resource, identified by its path
type ImageAsset struct {
	Path string
	GUID string // From the sidecar .meta file, empty when there is none
}

// TextureGroup holds the textures found for one logical material
type TextureGroup struct {
	Key                string
	BaseColor          *ImageAsset
	Normal             *ImageAsset
	MetallicSmoothness *ImageAsset
	Height             *ImageAsset
}

// Get returns the texture bound to role, or nil
func (g *TextureGroup) Get(role RoleKey) *ImageAsset {
	switch role {
	case RoleBaseColor:
		return g.BaseColor
	case RoleNormalMap:
		return g.Normal
	case RoleMetallicSmoothness:
		return g.MetallicSmoothness
	case RoleHeight:
		return g.Height
	}
	return nil
}

// Set binds asset to role and reports whether an earlier texture was replaced
func (g *TextureGroup) Set(role RoleKey, asset ImageAsset) (replaced bool) {
	replaced = g.Get(role) != nil
	a := asset
	switch role {
	case RoleBaseColor:
		g.BaseColor = &a
	case RoleNormalMap:
		g.Normal = &a
	case RoleMetallicSmoothness:
		g.MetallicSmoothness = &a
	case RoleHeight:
		g.Height = &a
	}
	return replaced
}

// Has reports whether a texture is bound to role
func (g *TextureGroup) Has(role RoleKey) bool {
	return g.Get(role) != nil
}

// Count returns how many roles are populated
func (g *TextureGroup) Count() int {
	n := 0
	for _, role := range Roles() {
		if g.Has(role) {
			n++
		}
	}
	return n
}

// TextureSet maps group keys to their texture groups
type TextureSet map[string]*TextureGroup

// Group returns the group for key, creating it if needed
func (s TextureSet) Group(key string) *TextureGroup {
	g, ok := s[key]
	if !ok {
		g = &TextureGroup{Key: key}
		s[key] = g
	}
	return g
}

// Keys returns the group keys in sorted order
func (s TextureSet) Keys() []string {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}
