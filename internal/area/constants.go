package area

// ==================== Error Messages ====================

// Format strings used with fmt.Errorf; the first verb is always domain.ErrInvalidSize
const (
	ErrFmtNilDescriptor     = "%w: descriptor is nil"
	ErrFmtEmptyText         = "%w: %q has no dimensions"
	ErrFmtDimensionCount    = "%w: %q must have exactly two dimensions, got %d"
	ErrFmtNotANumber        = "%w: %q is not a number"
	ErrFmtNonPositive       = "%w: dimension %v must be positive"
	ErrFmtNotFinite         = "%w: dimension %v must be finite"
	ErrFmtAreaNotFinite     = "%w: area of %s is not finite"
	ErrFmtAreaNonPositive   = "%w: area of %s rounds to zero"
	ErrFmtUnknownDescriptor = "%w: unsupported descriptor %T"
)
