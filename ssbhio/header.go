package ssbhio

import (
	"io"

	"github.com/anaminus/parse"
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/errors"
)

// ssbhSig is the signature that opens every SSBH file.
const ssbhSig = "HBSS"

// headerLength is the value of the header length field. Every known file
// stores 64 here regardless of the actual 20-byte header size.
const headerLength = 64

// HeaderSize is the byte length of the outer header: the signature, the
// header length field, the reserved field, and the format magic.
const HeaderSize = 20

// ReadHeader consumes the 20-byte SSBH header from r and returns the format
// magic together with the remainder of the file as an in-memory Reader.
// Offsets inside the payload are self-relative, so the payload parses
// identically with the header stripped.
func ReadHeader(r io.Reader) (magic ssbh.Magic, body *Reader, warn, err error) {
	fr := parse.NewBinaryReader(r)

	var sig [4]byte
	if fr.Bytes(sig[:]) {
		_, err = fr.End()
		return magic, nil, nil, err
	}
	if string(sig[:]) != ssbhSig {
		return magic, nil, nil, ErrInvalidSig
	}

	var length uint64
	if fr.Number(&length) {
		_, err = fr.End()
		return magic, nil, nil, err
	}
	if length != headerLength {
		return magic, nil, nil, ErrHeaderLength
	}

	var reserved uint32
	if fr.Number(&reserved) {
		_, err = fr.End()
		return magic, nil, nil, err
	}
	var warns errors.Errors
	if reserved != 0 {
		warns = append(warns, ReserveError{Value: reserved})
	}

	if fr.Bytes(magic[:]) {
		_, err = fr.End()
		return magic, nil, warns.Return(), err
	}

	payload, failed := fr.All()
	if failed {
		_, err = fr.End()
		return magic, nil, warns.Return(), err
	}
	return magic, NewReader(payload), warns.Return(), nil
}

// WriteHeader writes the 20-byte SSBH header for magic followed by body in
// a single pass over w.
func WriteHeader(w io.Writer, magic ssbh.Magic, body []byte) error {
	fw := parse.NewBinaryWriter(w)

	if fw.Bytes([]byte(ssbhSig)) {
		_, err := fw.End()
		return err
	}
	if fw.Number(uint64(headerLength)) {
		_, err := fw.End()
		return err
	}
	if fw.Number(uint32(0)) {
		_, err := fw.End()
		return err
	}
	if fw.Bytes(magic[:]) {
		_, err := fw.End()
		return err
	}
	fw.Bytes(body)
	_, err := fw.End()
	return err
}
