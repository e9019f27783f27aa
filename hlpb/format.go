// Package hlpb implements a decoder and encoder for the SSBH helper bone
// constraint format (HLPB).
package hlpb

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying a helper bone file.
var Signature = ssbh.MagicHlpb

const (
	majorVersion = 1
	minorVersion = 1
)

const (
	zRoot   = 68
	zAim    = 48
	zOrient = 100
	zIndex  = 4
)
