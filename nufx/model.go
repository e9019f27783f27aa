package nufx

// Nufx is a decoded shader program file.
type Nufx struct {
	// MinorVersion selects the entry layout: 0 or 1.
	MinorVersion uint16

	Programs []Program
}

// Program describes one shader program and the inputs it consumes.
type Program struct {
	Name       string
	RenderPass string

	// Shader names by stage. Unused stages hold empty strings.
	VertexShader   string
	UnkShader1     string
	UnkShader2     string
	GeometryShader string
	PixelShader    string
	ComputeShader  string

	VertexAttributes []VertexAttribute

	// MaterialParameters is present only in version 1.1 files.
	MaterialParameters []MaterialParameter
}

// VertexAttribute names one vertex input of a program.
type VertexAttribute struct {
	Name          string
	AttributeName string
}

// MaterialParameter names one material input of a program.
type MaterialParameter struct {
	ParamID uint64
	Name    string
}
