package container

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/skita-dev/skita/crypto/aead"
	"github.com/skita-dev/skita/crypto/kdf"
)

// Magic identifies a .skita container: ASCII "SKTA".
var Magic = [4]byte{'S', 'K', 'T', 'A'}

// KDFID identifies the KDF used to derive the master secret, matching the
// header's one-byte KDF id field.
type KDFID uint8

// Argon2id is the only recognized KDF id.
const Argon2id KDFID = 0

// VersionV1 is the legacy shape: header ends after the filename, no
// embedded plaintext hash.
const VersionV1 uint16 = 0x0001

// VersionV2 is the current shape: header carries a trailing 32-byte raw
// SHA-256 plaintext hash after the filename. New writers always emit this.
const VersionV2 uint16 = 0x0002

// ChunkSize is the fixed cleartext chunk size new containers are written
// with. Readers honor whatever value is stored in the header.
const ChunkSize = 4 * 1024 * 1024

// fixedHeaderLen is the byte count of every fixed-width field up to and
// including the filename-length field, i.e. everything before the
// variable-length filename.
const fixedHeaderLen = 63

// hashLen is the size of the trailing plaintext hash in a v2 header.
const hashLen = 32

// maxFilenameLen matches the header's 16-bit filename-length field.
const maxFilenameLen = math.MaxUint16

// Header is the parsed form of the .skita container header.
type Header struct {
	Version       uint16
	Algorithm     aead.Algorithm
	KDFID         KDFID
	KDFParams     kdf.Params
	Salt          [32]byte
	ChunkSize     uint32
	OriginalSize  uint32
	TotalChunks   uint32
	Filename      string
	HasHash       bool
	PlaintextHash [32]byte
}

// Encode writes h as the big-endian binary wire header and returns the
// encoded bytes. The version field is derived from
// h.HasHash (VersionV2 when true, VersionV1 when false) rather than trusted
// from h.Version, so callers can't accidentally write an inconsistent
// version/hash-presence combination.
func Encode(h Header) ([]byte, error) {
	filename := []byte(h.Filename)
	if len(filename) > maxFilenameLen {
		return nil, NewError(ErrKindInputTooLarge, fmt.Errorf("filename of %d bytes exceeds %d byte limit", len(filename), maxFilenameLen))
	}

	size := fixedHeaderLen + len(filename)
	if h.HasHash {
		size += hashLen
	}
	out := make([]byte, size)

	copy(out[0:4], Magic[:])
	version := VersionV1
	if h.HasHash {
		version = VersionV2
	}
	binary.BigEndian.PutUint16(out[4:6], version)
	out[6] = byte(h.Algorithm)
	out[7] = byte(h.KDFID)
	binary.BigEndian.PutUint32(out[8:12], h.KDFParams.MemoryKiB)
	binary.BigEndian.PutUint32(out[12:16], h.KDFParams.Iterations)
	out[16] = h.KDFParams.Parallelism
	copy(out[17:49], h.Salt[:])
	binary.BigEndian.PutUint32(out[49:53], h.ChunkSize)
	binary.BigEndian.PutUint32(out[53:57], h.OriginalSize)
	binary.BigEndian.PutUint32(out[57:61], h.TotalChunks)
	binary.BigEndian.PutUint16(out[61:63], uint16(len(filename)))
	copy(out[63:63+len(filename)], filename)
	if h.HasHash {
		copy(out[63+len(filename):], h.PlaintextHash[:])
	}

	return out, nil
}

// Decode parses a header from the front of data and returns it along with
// the number of bytes consumed (i.e. the offset of the first chunk
// record).
//
// Version 0x0002 always carries a hash; version 0x0001 never does, except
// for the documented legacy ambiguity where some
// writers emitted version 0x0001 even when a hash follows the filename. For
// that case Decode disambiguates by checking whether the bytes following
// the no-hash offset, or the bytes following the with-hash offset, form an
// exact run of TotalChunks well-formed chunk records covering every
// remaining byte of data — not by trusting the version field alone.
func Decode(data []byte) (Header, int, error) {
	if len(data) < 4 || [4]byte{data[0], data[1], data[2], data[3]} != Magic {
		return Header{}, 0, ErrBadMagic
	}
	if len(data) < fixedHeaderLen {
		return Header{}, 0, malformed("header shorter than %d fixed bytes", fixedHeaderLen)
	}

	version := binary.BigEndian.Uint16(data[4:6])
	if version != VersionV1 && version != VersionV2 {
		return Header{}, 0, ErrUnsupportedVersion
	}

	h := Header{Version: version}
	h.Algorithm = aead.Algorithm(data[6])
	h.KDFID = KDFID(data[7])
	if h.KDFID != Argon2id {
		return Header{}, 0, ErrUnsupportedKDF
	}
	h.KDFParams.MemoryKiB = binary.BigEndian.Uint32(data[8:12])
	h.KDFParams.Iterations = binary.BigEndian.Uint32(data[12:16])
	h.KDFParams.Parallelism = data[16]
	copy(h.Salt[:], data[17:49])
	h.ChunkSize = binary.BigEndian.Uint32(data[49:53])
	h.OriginalSize = binary.BigEndian.Uint32(data[53:57])
	h.TotalChunks = binary.BigEndian.Uint32(data[57:61])

	filenameLen := int(binary.BigEndian.Uint16(data[61:63]))
	if fixedHeaderLen+filenameLen > len(data) {
		return Header{}, 0, malformed("filename length %d extends past available bytes", filenameLen)
	}
	h.Filename = string(data[fixedHeaderLen : fixedHeaderLen+filenameLen])

	noHashLen := fixedHeaderLen + filenameLen
	withHashLen := noHashLen + hashLen

	switch {
	case version == VersionV2:
		if withHashLen > len(data) {
			return Header{}, 0, malformed("v2 header missing trailing %d byte hash", hashLen)
		}
		h.HasHash = true
		copy(h.PlaintextHash[:], data[noHashLen:withHashLen])
		return h, withHashLen, nil

	case withHashLen <= len(data) && isRecordRun(data, withHashLen, h.TotalChunks) && !isRecordRun(data, noHashLen, h.TotalChunks):
		// Legacy writer stamped version 0x0001 but a hash is actually
		// present: only the with-hash offset yields a consistent run of
		// chunk records covering the rest of the container.
		h.HasHash = true
		copy(h.PlaintextHash[:], data[noHashLen:withHashLen])
		return h, withHashLen, nil

	default:
		return h, noHashLen, nil
	}
}

// isRecordRun reports whether, starting at offset, data contains exactly
// count well-formed chunk records that together consume every remaining
// byte of data.
func isRecordRun(data []byte, offset int, count uint32) bool {
	off := offset
	for i := uint32(0); i < count; i++ {
		if off+recordPrefixLen > len(data) {
			return false
		}
		l := int(binary.BigEndian.Uint32(data[off : off+4]))
		if l < 0 || off+recordPrefixLen+l > len(data) {
			return false
		}
		off += recordPrefixLen + l
	}
	return off == len(data)
}
