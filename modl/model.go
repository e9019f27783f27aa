package modl

// Modl is a decoded model binding file. The file name fields refer to the
// sibling files making up one model.
type Modl struct {
	ModelFileName     string
	SkeletonFileName  string
	MaterialFileNames []string
	AnimationFileName string
	MeshFileName      string
	Entries           []Entry
}

// Entry assigns a material to one mesh object.
type Entry struct {
	MeshObjectName string

	// SubIndex distinguishes mesh objects sharing a name.
	SubIndex int64

	MaterialLabel string
}
