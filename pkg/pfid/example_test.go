package pfid_test

import (
	"fmt"
	"log"

	"github.com/ssargent/pfid/pkg/pfid"
)

// ExamplePack demonstrates packing explicit field values and encoding them.
func ExamplePack() {
	randomness := make([]byte, pfid.RandomSize)

	id, err := pfid.Pack(1234567890000, 123456789, randomness)
	if err != nil {
		log.Fatal(err)
	}

	text, err := id.Encode()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(text)
	// Output: 04fq3yr4a03nqk8n0000000000000000
}

// ExampleDecode demonstrates recovering the fields from a text id.
func ExampleDecode() {
	id, err := pfid.Decode("04fq3yr4a03nqk8n008j4ct4ank7f24s")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("timestamp: %d\n", id.Timestamp())
	fmt.Printf("partition: %d\n", id.Partition())
	fmt.Printf("randomness: %x\n", id.Randomness())
	// Output:
	// timestamp: 1234567890000
	// partition: 123456789
	// randomness: 00112233445566778899
}

// ExampleExtractPartition demonstrates reading the partition key without a
// full decode.
func ExampleExtractPartition() {
	partition, err := pfid.ExtractPartition("04fq3yr4a03nqk8n008j4ct4ank7f24s")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(partition)
	// Output: 123456789
}

// ExampleIsValidTextID demonstrates structural validation.
func ExampleIsValidTextID() {
	fmt.Println(pfid.IsValidTextID("04fq3yr4a03nqk8n008j4ct4ank7f24s"))
	fmt.Println(pfid.IsValidTextID("not-an-id"))
	fmt.Println(pfid.IsValidTextID(pfid.Zero))
	// Output:
	// true
	// false
	// true
}
