package analysis

// ==================== Log Messages ====================

const (
	LogMsgRunStarted         = "Pizza analysis started"
	LogMsgRanked             = "Pizzas ranked"
	LogMsgBestValue          = "Best value found"
	LogMsgRecommendationMade = "Budget recommendation made"
	LogMsgNothingAffordable  = "Budget does not cover a single pizza"
)

// ==================== Error Messages ====================

const (
	ErrMsgRankFailed      = "failed to rank pizzas: %w"
	ErrMsgReportFailed    = "failed to write report: %w"
	ErrMsgRecommendFailed = "failed to recommend purchase: %w"
)
