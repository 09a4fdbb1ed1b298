// Package fixture implements the CSV interchange format that keeps the
// PFID language ports bit-compatible. Every port runs its codec over the
// same fixture file and asserts identical text ids; the codec itself stays
// free of file I/O.
//
// The format is one header row followed by data rows:
//
//	timestamp,partition,randomness_hex,expected_text_id
//
// with randomness_hex the lowercase hex of the 10 randomness bytes.
package fixture

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/ssargent/pfid/pkg/pfid"
)

// Header is the column layout shared by every language port.
var Header = []string{"timestamp", "partition", "randomness_hex", "expected_text_id"}

// Row is one fixture entry: the three input fields and the text id the
// codec must produce from them.
type Row struct {
	Timestamp  uint64
	Partition  uint32
	Randomness []byte
	TextID     string
}

// Read parses a fixture CSV, header included. Any malformed row aborts the
// read with the row number in the error.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading fixture csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fixture csv is empty")
	}
	if !headerMatches(records[0]) {
		return nil, fmt.Errorf("unexpected fixture header %v", records[0])
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("fixture row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Write emits rows as a fixture CSV with the shared header.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing fixture header: %w", err)
	}
	for i, row := range rows {
		record := []string{
			strconv.FormatUint(row.Timestamp, 10),
			strconv.FormatUint(uint64(row.Partition), 10),
			hex.EncodeToString(row.Randomness),
			row.TextID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing fixture row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Generate produces n rows from the generator's clock and entropy, each
// with a random partition.
func Generate(g *pfid.Generator, n int) ([]Row, error) {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.NewRoot()
		if err != nil {
			return nil, fmt.Errorf("generating fixture row %d: %w", i+1, err)
		}
		text, err := id.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding fixture row %d: %w", i+1, err)
		}
		rows = append(rows, Row{
			Timestamp:  id.Timestamp(),
			Partition:  id.Partition(),
			Randomness: id.Randomness(),
			TextID:     text,
		})
	}
	return rows, nil
}

// Verify runs the cross-implementation contract over rows: packing the
// input fields must reproduce expected_text_id exactly, the text must
// validate, decode back to the packed binary, and yield the row's partition
// through extraction. The first failing row aborts with its number.
func Verify(rows []Row) error {
	for i, row := range rows {
		if err := verifyRow(row); err != nil {
			return fmt.Errorf("fixture row %d: %w", i+1, err)
		}
	}
	return nil
}

func verifyRow(row Row) error {
	id, err := pfid.Pack(row.Timestamp, row.Partition, row.Randomness)
	if err != nil {
		return err
	}

	text, err := id.Encode()
	if err != nil {
		return err
	}
	if text != row.TextID {
		return fmt.Errorf("encoded %q, fixture expects %q", text, row.TextID)
	}

	if !pfid.IsValidTextID(row.TextID) {
		return fmt.Errorf("expected text id %q fails validation", row.TextID)
	}

	decoded, err := pfid.Decode(row.TextID)
	if err != nil {
		return err
	}
	if decoded != id {
		return fmt.Errorf("decoded binary %x does not match packed %x", decoded.Bytes(), id.Bytes())
	}

	partition, err := pfid.ExtractPartition(row.TextID)
	if err != nil {
		return err
	}
	if partition != row.Partition {
		return fmt.Errorf("extracted partition %d, fixture expects %d", partition, row.Partition)
	}

	return nil
}

func parseRow(record []string) (Row, error) {
	if len(record) != len(Header) {
		return Row{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(record))
	}

	timestamp, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("parsing timestamp %q: %w", record[0], err)
	}
	partition, err := strconv.ParseUint(record[1], 10, 32)
	if err != nil {
		return Row{}, fmt.Errorf("parsing partition %q: %w", record[1], err)
	}
	randomness, err := hex.DecodeString(record[2])
	if err != nil {
		return Row{}, fmt.Errorf("parsing randomness %q: %w", record[2], err)
	}

	return Row{
		Timestamp:  timestamp,
		Partition:  uint32(partition),
		Randomness: randomness,
		TextID:     record[3],
	}, nil
}

func headerMatches(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, field := range Header {
		if record[i] != field {
			return false
		}
	}
	return true
}
