package vecio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/hupe1980/fastrsqrt"
)

// Record is one CSV row.
type Record struct {
	X float32 `csv:"x"`
	Y float32 `csv:"y"`
	Z float32 `csv:"z"`
}

// ReadVectors decodes all CSV rows from r.
func ReadVectors(r io.Reader) ([]fastrsqrt.Vec3, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}

	out := make([]fastrsqrt.Vec3, len(records))
	for i, rec := range records {
		out[i] = fastrsqrt.Vec3{X: rec.X, Y: rec.Y, Z: rec.Z}
	}

	return out, nil
}

// WriteVectors encodes vs as CSV rows with a header to w.
func WriteVectors(w io.Writer, vs []fastrsqrt.Vec3) error {
	records := make([]Record, len(vs))
	for i, v := range vs {
		records[i] = Record{X: v.X, Y: v.Y, Z: v.Z}
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing vectors: %w", err)
	}

	return nil
}
