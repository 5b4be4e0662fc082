package report

// Layout
const (
	BannerWidth = 70
	BannerRune  = "="
)

// Section titles
const (
	TitleAnalysis        = "PIZZA VALUE ANALYSIS"
	TitleRecommendations = "BUDGET RECOMMENDATIONS"
)

// Line formats for the analysis section
const (
	FmtRankHeading = "%d. %s\n"
	FmtArea        = "   Area: %.2f cm²\n"
	FmtPrice       = "   Price: %s\n"
	FmtValue       = "   Value: %.2f cm² per €\n"
	FmtCost        = "   Cost: %s per 100 cm²\n"
	FmtBestValue   = "🍕 BEST VALUE: %s\n"
	FmtBestRatio   = "   You get %.2f cm² per euro!\n"
)

// Line formats for the recommendation section
const (
	FmtBudget    = "With a budget of %s:\n"
	FmtBuy       = "  → Buy %dx %s\n"
	FmtTotalArea = "  → Total pizza area: %.2f cm²\n"
	FmtLeftover  = "  → Leftover: %s\n"
)
