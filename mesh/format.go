// Package mesh implements a decoder and encoder for the SSBH mesh format
// (MESH).
//
// Vertex and index data live in opaque byte buffers at the end of the file;
// the mesh objects describe how to slice them. Three revisions are handled:
// 1.8 and 1.9 share an attribute layout, 1.10 extends attributes with
// names.
package mesh

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/errors"
)

// Signature is the inner magic identifying a mesh file.
var Signature = ssbh.MagicMesh

const (
	majorVersion   = 1
	minorVersion8  = 8
	minorVersion9  = 9
	minorVersion10 = 10
)

const (
	zRoot        = 176
	zBounding    = 100
	zObject      = 180
	zAttributeV8 = 20
	zAttribV10   = 48
	zRigging     = 40
	zBoneBuffer  = 24
	zName        = 8
	zBuffer      = 16
)

// ErrAttributeVersion reports a mesh object whose attribute table does not
// match the file's minor version.
var ErrAttributeVersion = errors.New("mesh: attribute table does not match file version")
