package domain

// Overwrite records a texture that replaced an earlier one in the same slot
type Overwrite struct {
	Key      string
	Role     RoleKey
	Previous string
	Current  string
}

// CreatedMaterial is one persisted material
type CreatedMaterial struct {
	Key    string
	Path   string
	Record *MaterialRecord
}
