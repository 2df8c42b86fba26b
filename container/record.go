package container

import "encoding/binary"

// recordPrefixLen is the length of a chunk record's fixed prefix:
// Length(4) || Nonce(12), before the L-byte encrypted payload.
const recordPrefixLen = 4 + 12

// RecordNonceLen is the length of the nonce carried in each chunk record.
const RecordNonceLen = 12

// Record is one framed chunk record: an encrypted-length prefix, the
// nonce used to seal it, and the ciphertext-with-tag payload.
type Record struct {
	Nonce      [RecordNonceLen]byte
	Ciphertext []byte
}

// AppendRecord appends rec's wire encoding to buf and returns the extended
// slice: Length(4B, big-endian) || Nonce(12B) || Ciphertext(L bytes).
func AppendRecord(buf []byte, rec Record) []byte {
	var prefix [recordPrefixLen]byte
	binary.BigEndian.PutUint32(prefix[0:4], uint32(len(rec.Ciphertext)))
	copy(prefix[4:16], rec.Nonce[:])

	buf = append(buf, prefix[:]...)
	buf = append(buf, rec.Ciphertext...)
	return buf
}

// ReadRecord parses one chunk record from data starting at offset and
// returns it along with the offset of the byte following it.
func ReadRecord(data []byte, offset int) (Record, int, error) {
	if offset+recordPrefixLen > len(data) {
		return Record{}, 0, malformed("chunk record prefix extends past available bytes at offset %d", offset)
	}

	length := binary.BigEndian.Uint32(data[offset : offset+4])
	var rec Record
	copy(rec.Nonce[:], data[offset+4:offset+recordPrefixLen])

	payloadStart := offset + recordPrefixLen
	payloadEnd := payloadStart + int(length)
	if payloadEnd < payloadStart || payloadEnd > len(data) {
		return Record{}, 0, malformed("chunk record payload of %d bytes extends past available bytes at offset %d", length, offset)
	}

	rec.Ciphertext = data[payloadStart:payloadEnd]
	return rec, payloadEnd, nil
}
