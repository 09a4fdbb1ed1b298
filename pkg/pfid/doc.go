// Package pfid implements PFID, a 160-bit lexicographically sortable
// identifier carrying a millisecond timestamp, a 30-bit partition key and
// 80 bits of randomness.
//
// # Binary Format
//
// An ID is 20 bytes, big-endian throughout:
//
//	[Timestamp(6)][Partition(4)][Randomness(10)]
//
// Fields:
//   - Timestamp: 48-bit unsigned milliseconds since the Unix epoch
//     (bytes 0-5)
//   - Partition: 30-bit caller-assigned shard key, zero-extended into a
//     32-bit field; the top 2 bits of byte 6 are always 0 (bytes 6-9)
//   - Randomness: 80 bits of externally supplied entropy (bytes 10-19)
//
// Because the timestamp occupies the most significant bytes, byte-wise
// comparison of two IDs preserves chronological order.
//
// # Text Format
//
// The text form is 32 characters of Crockford Base32 over the alphabet
//
//	0123456789abcdefghjkmnpqrstvwxyz
//
// (i, l, o and u are excluded to avoid transcription ambiguity). The 160
// bits are sliced into 32 five-bit symbols, most significant first. Five-bit
// symbols do not fall on byte boundaries, so the codec reads and writes bit
// runs across bytes. Encoding is lowercase; decoding accepts both cases.
//
// Every valid text id starts with a character in '0'..'7'. The six
// characters at offsets [10,16) encode exactly the 30 partition bits, so the
// partition can be extracted without decoding the full id.
//
// # Generation
//
// A Generator composes the codec with two external collaborators, a
// millisecond clock and an entropy source. The zero GeneratorConfig uses
// time.Now and crypto/rand. Generators hold no state and are safe for
// concurrent use; ids generated in the same millisecond are distinct up to
// the collision probability of 80 independent random bits. There is no
// monotonicity guarantee within a millisecond.
//
// # Error Handling
//
// All fallible entry points return an error wrapping one of the package
// sentinel errors (ErrInvalidTextInput, ErrInvalidBinaryInput,
// ErrInvalidPartition, ErrInvalidTimestamp); match with errors.Is. Out of
// range values are never clamped, truncated or wrapped, and no entry point
// returns a partial result. The validators IsValidTextID and
// IsValidBinaryID never error; they report structural validity as a bool.
//
// # Usage
//
//	id, err := pfid.New(42)
//	if err != nil {
//	    return err
//	}
//	text, err := id.Encode()
//	if err != nil {
//	    return err
//	}
//	back, err := pfid.Decode(text)       // back == id
//	part, err := pfid.ExtractPartition(text) // part == 42
//
// # Compatibility
//
// The binary and text layouts are frozen; independent implementations in
// other languages stay bit-compatible through a shared fixture file (see the
// fixture package). Any change to the alphabet, field widths or symbol
// slicing is a breaking change to every port.
package pfid
