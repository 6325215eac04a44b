package domain

// Preference keys, namespaced the way the editor window stores them
const (
	PrefKeyInputPath  = "TextureToMaterial_inputPath"
	PrefKeyOutputPath = "TextureToMaterial_outputPath"
)

const (
	DefaultInputPath  = "Assets/Textures"
	DefaultOutputPath = "Assets/Materials"
)

// Preferences are the last-used conversion paths
type Preferences struct {
	InputPath  string
	OutputPath string
}

// DefaultPreferences returns the paths used when nothing has been stored
func DefaultPreferences() Preferences {
	return Preferences{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}
