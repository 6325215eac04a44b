package repository

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// slotOrder fixes the order texture slots are written in
var slotOrder = []domain.SlotName{
	domain.SlotMainTex,
	domain.SlotBumpMap,
	domain.SlotMetallicGlossMap,
	domain.SlotParallaxMap,
}

// MaterialFile is the on-disk layout of a material asset
type MaterialFile struct {
	Material MaterialDoc `yaml:"Material"`
}

type MaterialDoc struct {
	Name           string   `yaml:"m_Name"`
	Shader         AssetRef `yaml:"m_Shader"`
	ShaderKeywords string   `yaml:"m_ShaderKeywords"`
	TexEnvs        []TexEnv `yaml:"m_TexEnvs"`
}

// AssetRef points at another asset by path and GUID
type AssetRef struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path,omitempty"`
	GUID string `yaml:"guid,omitempty"`
}

type TexEnv struct {
	Slot    string     `yaml:"slot"`
	Texture AssetRef   `yaml:"m_Texture"`
	Scale   [2]float64 `yaml:"m_Scale,flow"`
	Offset  [2]float64 `yaml:"m_Offset,flow"`
}

// NewMaterialFile converts a record to its file layout
func NewMaterialFile(m *domain.MaterialRecord) *MaterialFile {
	doc := MaterialDoc{
		Name:           m.Name,
		Shader:         AssetRef{Name: m.Shader.Name, GUID: m.Shader.GUID},
		ShaderKeywords: strings.Join(m.Keywords(), " "),
	}
	for _, slot := range slotOrder {
		tex, ok := m.Texture(slot)
		if !ok {
			continue
		}
		doc.TexEnvs = append(doc.TexEnvs, TexEnv{
			Slot:    string(slot),
			Texture: AssetRef{Path: tex.Path, GUID: tex.GUID},
			Scale:   [2]float64{1, 1},
		})
	}
	return &MaterialFile{Material: doc}
}

// Record converts the file layout back into a record
func (f *MaterialFile) Record() *domain.MaterialRecord {
	doc := f.Material
	m := domain.NewMaterialRecord(doc.Name, domain.Shader{Name: doc.Shader.Name, GUID: doc.Shader.GUID})
	for _, env := range doc.TexEnvs {
		m.SetTexture(domain.SlotName(env.Slot), domain.ImageAsset{Path: env.Texture.Path, GUID: env.Texture.GUID})
	}
	for _, kw := range strings.Fields(doc.ShaderKeywords) {
		switch kw {
		case domain.KeywordNormalMap:
			m.NormalMapEnabled = true
		case domain.KeywordMetallicGlossMap:
			m.MetallicMapEnabled = true
		}
	}
	return m
}

// EncodeMaterial writes a record to w
func EncodeMaterial(w io.Writer, m *domain.MaterialRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewMaterialFile(m)); err != nil {
		return fmt.Errorf("failed to encode material: %w", err)
	}
	return enc.Close()
}

// FormatMaterial renders a record to bytes
func FormatMaterial(m *domain.MaterialRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeMaterial(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMaterial reads a record from r
func DecodeMaterial(r io.Reader) (*domain.MaterialRecord, error) {
	var f MaterialFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode material: %w", err)
	}
	return f.Record(), nil
}

// DecodeMaterialFile reads a record from path
func DecodeMaterialFile(path string) (*domain.MaterialRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeMaterial(file)
}
