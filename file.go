// The ssbh package handles the decoding and encoding of the SSBH family of
// game container formats.
//
// An SSBH file begins with a fixed 20-byte header: the "HBSS" signature, the
// header length, a reserved field, and a second 4-byte magic naming the
// specific format stored in the file. Every format after the header is a tree
// of records connected by self-relative byte offsets; the sub-package
// "ssbhio" implements the offset engine that all format packages share.
//
// Each format has its own sub-package with a Decoder and Encoder: "skel" for
// skeletons, "mesh" for mesh data, "anim" for keyframe animations, "matl"
// for materials, "modl" for model bindings, "hlpb" for helper-bone
// constraints, "shdr" and "nufx" for shader data. The Magic type
// identifies which package handles a given file.
//
// This package holds the value types shared by the format packages: vectors,
// matrices, and colors, stored as little-endian IEEE 754 floats.
package ssbh

// Magic identifies an SSBH format by the second 4-byte signature of its
// header. The zero value indicates an unrecognized format.
type Magic [4]byte

// Magic values for each known format. The signature bytes appear reversed
// relative to the format's conventional name, matching the "HBSS" signature
// itself.
var (
	MagicSkel Magic = [4]byte{'L', 'E', 'K', 'S'} // skeleton
	MagicMesh Magic = [4]byte{'H', 'S', 'E', 'M'} // mesh
	MagicAnim Magic = [4]byte{'M', 'I', 'N', 'A'} // animation
	MagicMatl Magic = [4]byte{'L', 'T', 'A', 'M'} // material
	MagicNufx Magic = [4]byte{'X', 'F', 'U', 'N'} // shader effects
	MagicShdr Magic = [4]byte{'R', 'D', 'H', 'S'} // shader
	MagicModl Magic = [4]byte{'L', 'D', 'O', 'M'} // model
	MagicHlpb Magic = [4]byte{'B', 'P', 'L', 'H'} // helper bone constraints
	MagicNrpd Magic = [4]byte{'D', 'P', 'R', 'N'} // render pass data
)

// Valid returns whether the magic identifies a known SSBH format.
func (m Magic) Valid() bool {
	switch m {
	case MagicSkel, MagicMesh, MagicAnim, MagicMatl, MagicNufx,
		MagicShdr, MagicModl, MagicHlpb, MagicNrpd:
		return true
	}
	return false
}

// String returns the conventional name of the format, or "Unknown" if the
// magic is not recognized.
func (m Magic) String() string {
	switch m {
	case MagicSkel:
		return "Skel"
	case MagicMesh:
		return "Mesh"
	case MagicAnim:
		return "Anim"
	case MagicMatl:
		return "Matl"
	case MagicNufx:
		return "Nufx"
	case MagicShdr:
		return "Shdr"
	case MagicModl:
		return "Modl"
	case MagicHlpb:
		return "Hlpb"
	case MagicNrpd:
		return "Nrpd"
	default:
		return "Unknown"
	}
}
