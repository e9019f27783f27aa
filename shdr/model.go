package shdr

// Shdr is a decoded shader container file.
type Shdr struct {
	Shaders []Shader
}

// Shader is one compiled shader stage. Binary holds the platform's compiled
// program image and is not interpreted further.
type Shader struct {
	Name   string
	Stage  Stage
	Unk3   uint32
	Binary []byte
}

// Stage identifies the pipeline stage a shader binary targets.
type Stage uint32

const (
	StageVertex   Stage = 0
	StageGeometry Stage = 3
	StageFragment Stage = 5
	StageCompute  Stage = 6
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageGeometry:
		return "Geometry"
	case StageFragment:
		return "Fragment"
	case StageCompute:
		return "Compute"
	}
	return "Unknown"
}
