package pfid

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// BinarySize is the length of the packed binary form in bytes.
	BinarySize = 20
	// TextSize is the length of the Base32 text form in characters.
	TextSize = 32
	// RandomSize is the length of the randomness field in bytes.
	RandomSize = 10

	// MaxTimestamp is the largest packable timestamp, 2^48 - 1 milliseconds.
	MaxTimestamp uint64 = 1<<48 - 1
	// MaxPartition is the largest packable partition key, 2^30 - 1.
	MaxPartition uint32 = 1<<30 - 1

	// Zero is the reserved placeholder text id. It is what an all-zero
	// binary encodes to, but callers should treat it as a named constant
	// rather than re-derive it.
	Zero = "00000000000000000000000000000000"
)

// The 30 partition bits align exactly with the six symbols at text
// offsets [10,16): the two zero padding bits of the 32-bit partition
// field end in symbol 9.
const (
	partitionTextOffset = 10
	partitionTextLen    = 6
)

// ID is a 160-bit sortable identifier packed as 20 bytes big-endian:
// [6 bytes ms timestamp][4 bytes partition][10 bytes randomness].
type ID [BinarySize]byte

// Pack assembles an ID from its three fields. Timestamp must be within
// [0, 2^48), partition within [0, 2^30), and randomness exactly 10 bytes;
// out of range values are rejected, never truncated or wrapped.
func Pack(timestamp uint64, partition uint32, randomness []byte) (ID, error) {
	var id ID
	if timestamp > MaxTimestamp {
		return id, fmt.Errorf("timestamp %d: %w", timestamp, ErrInvalidTimestamp)
	}
	if partition > MaxPartition {
		return id, fmt.Errorf("partition %d: %w", partition, ErrInvalidPartition)
	}
	if len(randomness) != RandomSize {
		return id, fmt.Errorf("randomness length %d: %w", len(randomness), ErrInvalidBinaryInput)
	}
	binary.BigEndian.PutUint16(id[0:2], uint16(timestamp>>32))
	binary.BigEndian.PutUint32(id[2:6], uint32(timestamp))
	binary.BigEndian.PutUint32(id[6:10], partition)
	copy(id[10:], randomness)
	return id, nil
}

// FromBytes adopts an arbitrary 20-byte sequence as an ID. The two padding
// bits of the partition field are not checked; only the text codec enforces
// them, through the leading-character rule.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != BinarySize {
		return id, fmt.Errorf("binary length %d: %w", len(b), ErrInvalidBinaryInput)
	}
	copy(id[:], b)
	return id, nil
}

// Decode parses a 32-character text id. Input is accepted case
// insensitively; it must be exactly 32 characters, start with '0'..'7' and
// contain only alphabet characters, otherwise ErrInvalidTextInput is
// returned and no partial result is produced.
func Decode(text string) (ID, error) {
	var id ID
	if !IsValidTextID(text) {
		return id, fmt.Errorf("%q: %w", text, ErrInvalidTextInput)
	}
	w := bitWriter{buf: id[:]}
	for i := 0; i < TextSize; i++ {
		w.writeBits(uint32(symbols[text[i]]), 5)
	}
	return id, nil
}

// Timestamp returns the 48-bit millisecond timestamp field.
func (id ID) Timestamp() uint64 {
	return uint64(binary.BigEndian.Uint16(id[0:2]))<<32 |
		uint64(binary.BigEndian.Uint32(id[2:6]))
}

// Partition returns the 30-bit partition field.
func (id ID) Partition() uint32 {
	return binary.BigEndian.Uint32(id[6:10]) & MaxPartition
}

// Randomness returns a copy of the 10 randomness bytes.
func (id ID) Randomness() []byte {
	b := make([]byte, RandomSize)
	copy(b, id[10:])
	return b
}

// Bytes returns a copy of the raw 20-byte representation.
func (id ID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, id[:])
	return b
}

// Compare returns -1, 0, 1 based on lexical comparison, which for IDs is
// also chronological order.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Encode renders the id as 32 lowercase Crockford Base32 characters. It
// self-checks that the produced text starts with '0'..'7'; a failure means
// the binary did not come from Pack (its timestamp is >= 2^46) and is
// reported rather than emitted.
func (id ID) Encode() (string, error) {
	text := id.transcode()
	if text[0] > '7' {
		return "", fmt.Errorf("leading symbol %q out of range: %w", text[0], ErrInvalidBinaryInput)
	}
	return string(text), nil
}

// String returns the Base32 text without the leading-character self-check.
// It is meant for logs and debugging; use Encode for anything that will be
// decoded again.
func (id ID) String() string {
	return string(id.transcode())
}

func (id ID) transcode() []byte {
	out := make([]byte, TextSize)
	r := bitReader{buf: id[:]}
	for i := range out {
		out[i] = alphabet[r.readBits(5)]
	}
	return out
}

// ExtractPartition recovers the partition key from a text id without
// decoding the full 160 bits, by reassembling the six symbols at offsets
// [10,16). The input must satisfy IsValidTextID.
func ExtractPartition(text string) (uint32, error) {
	if !IsValidTextID(text) {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidTextInput)
	}
	var p uint32
	for i := partitionTextOffset; i < partitionTextOffset+partitionTextLen; i++ {
		p = p<<5 | uint32(symbols[text[i]])
	}
	return p, nil
}

// IsValidTextID reports whether candidate is a structurally valid text id:
// exactly 32 characters, first character in '0'..'7', every character in
// the alphabet (case insensitive). It never errors and performs no decode.
func IsValidTextID(candidate string) bool {
	if len(candidate) != TextSize {
		return false
	}
	if candidate[0] < '0' || candidate[0] > '7' {
		return false
	}
	for i := 0; i < TextSize; i++ {
		if symbols[candidate[i]] == invalidSymbol {
			return false
		}
	}
	return true
}

// IsValidBinaryID reports whether candidate can be adopted as an ID. Any
// 20-byte sequence qualifies; only the text form carries an extra
// structural constraint.
func IsValidBinaryID(candidate []byte) bool {
	return len(candidate) == BinarySize
}
