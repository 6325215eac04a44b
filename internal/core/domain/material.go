package domain

// DefaultShader is the shader every generated material is created against
const DefaultShader = "Standard"

// DefaultMaterialExtension is appended to the group key to name the output file
const DefaultMaterialExtension = ".mat"

// SlotName is a shader texture property
type SlotName string

const (
	SlotMainTex          SlotName = "_MainTex"
	SlotBumpMap          SlotName = "_BumpMap"
	SlotMetallicGlossMap SlotName = "_MetallicGlossMap"
	SlotParallaxMap      SlotName = "_ParallaxMap"
)

// Shader keywords toggled by the feature flags
const (
	KeywordNormalMap        = "_NORMALMAP"
	KeywordMetallicGlossMap = "_METALLICGLOSSMAP"
)

// SlotForRole returns the shader slot a role binds to
func SlotForRole(role RoleKey) SlotName {
	switch role {
	case RoleBaseColor:
		return SlotMainTex
	case RoleNormalMap:
		return SlotBumpMap
	case RoleMetallicSmoothness:
		return SlotMetallicGlossMap
	case RoleHeight:
		return SlotParallaxMap
	}
	return ""
}

// Shader is a resolved shader reference
type Shader struct {
	Name string
	GUID string
}

// MaterialRecord is the output artifact binding textures to shader slots
type MaterialRecord struct {
	Name               string
	Shader             Shader
	Slots              map[SlotName]ImageAsset
	NormalMapEnabled   bool
	MetallicMapEnabled bool
}

// NewMaterialRecord creates an empty record bound to shader
func NewMaterialRecord(name string, shader Shader) *MaterialRecord {
	return &MaterialRecord{
		Name:   name,
		Shader: shader,
		Slots:  make(map[SlotName]ImageAsset),
	}
}

// SetTexture binds asset to slot
func (m *MaterialRecord) SetTexture(slot SlotName, asset ImageAsset) {
	m.Slots[slot] = asset
}

// Texture returns the texture bound to slot
func (m *MaterialRecord) Texture(slot SlotName) (ImageAsset, bool) {
	a, ok := m.Slots[slot]
	return a, ok
}

// Keywords returns the enabled shader keywords in a stable order
func (m *MaterialRecord) Keywords() []string {
	var kw []string
	if m.NormalMapEnabled {
		kw = append(kw, KeywordNormalMap)
	}
	if m.MetallicMapEnabled {
		kw = append(kw, KeywordMetallicGlossMap)
	}
	return kw
}
