package ssbhio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

func TestWriteHeaderGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, ssbh.MagicAnim, []byte{0xAA, 0xBB}); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		'H', 'B', 'S', 'S',
		64, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		'M', 'I', 'N', 'A',
		0xAA, 0xBB,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestReadHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	body := []byte{1, 2, 3, 4}
	if err := WriteHeader(&buf, ssbh.MagicSkel, body); err != nil {
		t.Fatal(err)
	}
	magic, r, warn, err := ReadHeader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if magic != ssbh.MagicSkel {
		t.Errorf("magic: got %q", magic[:])
	}
	if r.Len() != int64(len(body)) {
		t.Errorf("payload length: got %d, want %d", r.Len(), len(body))
	}
}

func TestReadHeaderBadSignature(t *testing.T) {
	data := []byte("SSBHxxxxxxxxxxxx")
	_, _, _, err := ReadHeader(bytes.NewReader(data))
	if !errors.Is(err, ErrInvalidSig) {
		t.Fatalf("got %v, want ErrInvalidSig", err)
	}
}

func TestReadHeaderBadLength(t *testing.T) {
	data := make([]byte, 16)
	copy(data, "HBSS")
	binary.LittleEndian.PutUint64(data[4:], 32)
	_, _, _, err := ReadHeader(bytes.NewReader(data))
	if !errors.Is(err, ErrHeaderLength) {
		t.Fatalf("got %v, want ErrHeaderLength", err)
	}
}

func TestReadHeaderReservedWarning(t *testing.T) {
	data := make([]byte, 12, 20)
	copy(data, "HBSS")
	binary.LittleEndian.PutUint64(data[4:], 64)
	data = append(data, 0xEF, 0xBE, 0, 0)
	data = append(data, "LEKS"...)

	magic, _, warn, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if magic != ssbh.MagicSkel {
		t.Errorf("magic: got %q", magic[:])
	}
	var re ReserveError
	if !errors.As(warn, &re) || re.Value != 0xBEEF {
		t.Errorf("warning: got %v, want ReserveError(0xBEEF)", warn)
	}
}
