package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SizeDescriptor describes the dimensions of a pizza.
// It is one of Diameter, Rectangle or RawText.
type SizeDescriptor interface {
	fmt.Stringer
	isSizeDescriptor()
}

// Diameter is a round pizza measured across, in centimeters.
type Diameter float64

// Rectangle is a rectangular pizza, in centimeters.
type Rectangle struct {
	Width  float64
	Height float64
}

// RawText is an unparsed descriptor such as "26cm" or "46x33cm".
// The area package normalizes it into a Diameter or a Rectangle.
type RawText string

func (Diameter) isSizeDescriptor()  {}
func (Rectangle) isSizeDescriptor() {}
func (RawText) isSizeDescriptor()   {}

func (d Diameter) String() string {
	return formatDimension(float64(d)) + UnitCentimeter
}

func (r Rectangle) String() string {
	return formatDimension(r.Width) + DimensionSep + formatDimension(r.Height) + UnitCentimeter
}

func (t RawText) String() string {
	return string(t)
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SizeField decodes a size from JSON: a number is a Diameter, a string is RawText.
type SizeField struct {
	Descriptor SizeDescriptor
}

// UnmarshalJSON implements json.Unmarshaler
func (f *SizeField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: size is missing", ErrInvalidSize)
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err == nil {
		f.Descriptor = Diameter(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		f.Descriptor = RawText(text)
		return nil
	}

	return fmt.Errorf("%w: size must be a number or a string, got %s", ErrInvalidSize, trimmed)
}

// MarshalJSON implements json.Marshaler
func (f SizeField) MarshalJSON() ([]byte, error) {
	switch d := f.Descriptor.(type) {
	case Diameter:
		return json.Marshal(float64(d))
	case nil:
		return []byte("null"), nil
	default:
		return json.Marshal(d.String())
	}
}
