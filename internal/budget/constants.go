package budget

// ==================== Error Messages ====================

const (
	ErrMsgNegativeBudgetFmt = "budget %s is negative: %w"
	ErrMsgFreeItemFmt       = "cannot size a purchase of %q: %w"
)
