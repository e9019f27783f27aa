// Package matl implements a decoder and encoder for the SSBH material
// library format (MATL).
//
// A material is a bag of parameters keyed by parameter ID. Each parameter
// value is a tagged union: an 8-byte relative pointer to the value followed
// by an 8-byte type tag, so readers can skip value types they do not know.
package matl

import (
	"fmt"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying a material library file.
var Signature = ssbh.MagicMatl

const (
	majorVersion = 1
	minorVersion = 6
)

const (
	zRoot      = 20
	zEntry     = 32
	zAttribute = 24

	zFloat           = 4
	zBoolean         = 4
	zVector4         = 16
	zString          = 8
	zSampler         = 56
	zBlendState      = 40
	zRasterizerState = 24
)

// UnsupportedParamError reports a parameter value whose type tag has no
// known layout.
type UnsupportedParamError struct {
	Type DataType
}

func (err UnsupportedParamError) Error() string {
	return fmt.Sprintf("matl: unsupported parameter data type 0x%X", uint64(err.Type))
}
