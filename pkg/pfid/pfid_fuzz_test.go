//go:build fuzz
// +build fuzz

package pfid

import (
	"bytes"
	"testing"
)

// FuzzCodec_RoundTrip checks pack/encode/decode/extract agreement over
// arbitrary field values.
func FuzzCodec_RoundTrip(f *testing.F) {
	// Seed corpus
	f.Add(uint64(0), uint32(0), make([]byte, 10))
	f.Add(uint64(1234567890000), uint32(123456789), []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99})
	f.Add(uint64(1)<<46-1, uint32(1)<<30-1, bytes.Repeat([]byte{0xff}, 10))

	f.Fuzz(func(t *testing.T, timestamp uint64, partition uint32, randomness []byte) {
		if timestamp > MaxTimestamp || partition > MaxPartition || len(randomness) != RandomSize {
			t.Skip("outside codec domain")
		}

		id, err := Pack(timestamp, partition, randomness)
		if err != nil {
			t.Fatalf("Pack failed for ts=%d part=%d: %v", timestamp, partition, err)
		}

		if id.Timestamp() != timestamp {
			t.Errorf("Timestamp = %d, want %d", id.Timestamp(), timestamp)
		}
		if id.Partition() != partition {
			t.Errorf("Partition = %d, want %d", id.Partition(), partition)
		}
		if !bytes.Equal(id.Randomness(), randomness) {
			t.Errorf("Randomness = %x, want %x", id.Randomness(), randomness)
		}

		text, err := id.Encode()
		if err != nil {
			// Reachable only for timestamps >= 2^46, where the leading
			// symbol self-check refuses to emit.
			if timestamp < 1<<46 {
				t.Fatalf("Encode failed for ts=%d: %v", timestamp, err)
			}
			return
		}

		if !IsValidTextID(text) {
			t.Fatalf("encoded id %q fails validation", text)
		}

		decoded, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode failed for %q: %v", text, err)
		}
		if decoded != id {
			t.Errorf("round trip mismatch: got %x, want %x", decoded[:], id[:])
		}

		extracted, err := ExtractPartition(text)
		if err != nil {
			t.Fatalf("ExtractPartition failed for %q: %v", text, err)
		}
		if extracted != partition {
			t.Errorf("ExtractPartition = %d, want %d", extracted, partition)
		}
	})
}

// FuzzDecode_NeverPanics throws arbitrary strings at the text paths.
func FuzzDecode_NeverPanics(f *testing.F) {
	f.Add("")
	f.Add("04fq3yr4a03nqk8n008j4ct4ank7f24s")
	f.Add("8zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	f.Add("0000000000000000000000000000000\xff")

	f.Fuzz(func(t *testing.T, text string) {
		id, err := Decode(text)
		if err != nil {
			if IsValidTextID(text) {
				t.Fatalf("Decode rejected valid text %q: %v", text, err)
			}
			return
		}
		if !IsValidTextID(text) {
			t.Fatalf("Decode accepted invalid text %q", text)
		}

		// Accepted input must round-trip to its lowercase form.
		back, err := id.Encode()
		if err != nil {
			t.Fatalf("Encode failed after decoding %q: %v", text, err)
		}
		roundTrip, err := Decode(back)
		if err != nil || roundTrip != id {
			t.Fatalf("canonical round trip failed for %q", text)
		}
	})
}
