// Package area turns pizza size descriptors into surface areas in square centimeters.
package area

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/pizzavalue/internal/domain"
)

// Compute returns the area in cm² covered by the descriptor.
// Round pizzas use π × (d/2)², rectangular ones width × height.
// An area that overflows or underflows float64 is rejected like a bad dimension.
// RawText descriptors are normalized first.
func Compute(d domain.SizeDescriptor) (float64, error) {
	normalized, err := Normalize(d)
	if err != nil {
		return 0, err
	}

	var a float64
	switch v := normalized.(type) {
	case domain.Diameter:
		radius := float64(v) / 2
		a = math.Pi * radius * radius
	case domain.Rectangle:
		a = v.Width * v.Height
	default:
		return 0, fmt.Errorf(ErrFmtUnknownDescriptor, domain.ErrInvalidSize, normalized)
	}

	// Valid dimensions can still overflow to +Inf or underflow to 0
	if math.IsInf(a, 0) || math.IsNaN(a) {
		return 0, fmt.Errorf(ErrFmtAreaNotFinite, domain.ErrInvalidSize, normalized.String())
	}
	if a <= 0 {
		return 0, fmt.Errorf(ErrFmtAreaNonPositive, domain.ErrInvalidSize, normalized.String())
	}
	return a, nil
}

// Normalize resolves a descriptor into a validated Diameter or Rectangle.
//
// Text is case-folded and trimmed, and a trailing "cm" unit is dropped.
// Text containing "x" must split into exactly two numbers (width and height),
// anything else must be a single number (diameter). Every dimension must be
// a positive finite number.
func Normalize(d domain.SizeDescriptor) (domain.SizeDescriptor, error) {
	switch v := d.(type) {
	case nil:
		return nil, fmt.Errorf(ErrFmtNilDescriptor, domain.ErrInvalidSize)
	case domain.Diameter:
		if err := checkDimension(float64(v)); err != nil {
			return nil, err
		}
		return v, nil
	case domain.Rectangle:
		if err := checkDimension(v.Width); err != nil {
			return nil, err
		}
		if err := checkDimension(v.Height); err != nil {
			return nil, err
		}
		return v, nil
	case domain.RawText:
		return parseText(v)
	default:
		return nil, fmt.Errorf(ErrFmtUnknownDescriptor, domain.ErrInvalidSize, d)
	}
}

func parseText(raw domain.RawText) (domain.SizeDescriptor, error) {
	// A Caser keeps state, so one is made per call.
	text := strings.TrimSpace(cases.Fold().String(string(raw)))
	text = strings.TrimSpace(strings.TrimSuffix(text, domain.UnitCentimeter))
	if text == "" {
		return nil, fmt.Errorf(ErrFmtEmptyText, domain.ErrInvalidSize, string(raw))
	}

	if !strings.Contains(text, domain.DimensionSep) {
		diameter, err := parseDimension(text)
		if err != nil {
			return nil, err
		}
		return domain.Diameter(diameter), nil
	}

	parts := strings.Split(text, domain.DimensionSep)
	if len(parts) != 2 {
		return nil, fmt.Errorf(ErrFmtDimensionCount, domain.ErrInvalidSize, string(raw), len(parts))
	}

	width, err := parseDimension(parts[0])
	if err != nil {
		return nil, err
	}
	height, err := parseDimension(parts[1])
	if err != nil {
		return nil, err
	}

	return domain.Rectangle{Width: width, Height: height}, nil
}

func parseDimension(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtNotANumber, domain.ErrInvalidSize, s)
	}
	if err := checkDimension(v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkDimension(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf(ErrFmtNotFinite, domain.ErrInvalidSize, v)
	}
	if v <= 0 {
		return fmt.Errorf(ErrFmtNonPositive, domain.ErrInvalidSize, v)
	}
	return nil
}
