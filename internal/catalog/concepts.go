// Package catalog holds the static educational content catalog. Entries are
// read-only reference data; nothing here changes at runtime.
package catalog

import "flashtrade/internal/domain"

var concepts = []domain.Concept{
	{
		ID:            "candlestick-basics",
		Title:         "Candlestick Patterns",
		Description:   "Learn to read candlestick charts and identify key patterns that signal market movements.",
		ContentType:   domain.ContentVideo,
		Difficulty:    domain.DifficultyBeginner,
		EstimatedTime: 3,
		Category:      "Technical Analysis",
	},
	{
		ID:            "order-book",
		Title:         "Understanding Order Books",
		Description:   "Master the order book to see market depth and predict price movements.",
		ContentType:   domain.ContentInfographic,
		Difficulty:    domain.DifficultyBeginner,
		EstimatedTime: 2,
		Category:      "Market Structure",
	},
	{
		ID:            "support-resistance",
		Title:         "Support & Resistance",
		Description:   "Identify key price levels where assets tend to bounce or break through.",
		ContentType:   domain.ContentVideo,
		Difficulty:    domain.DifficultyIntermediate,
		EstimatedTime: 4,
		Category:      "Technical Analysis",
	},
	{
		ID:            "risk-management",
		Title:         "Risk Management",
		Description:   "Learn position sizing, stop-losses, and how to protect your capital.",
		ContentType:   domain.ContentVideo,
		Difficulty:    domain.DifficultyIntermediate,
		EstimatedTime: 5,
		Category:      "Risk Management",
	},
	{
		ID:            "market-psychology",
		Title:         "Market Psychology",
		Description:   "Understand fear, greed, and how emotions drive market movements.",
		ContentType:   domain.ContentInfographic,
		Difficulty:    domain.DifficultyAdvanced,
		EstimatedTime: 6,
		Category:      "Psychology",
	},
}

var premiumFeatures = []domain.PremiumFeature{
	{
		ID:          "advanced-signals",
		Name:        "Advanced Trading Signals",
		Description: "AI-powered signals with 85% accuracy rate",
		Price:       0.001,
		Duration:    "1 day",
	},
	{
		ID:          "unlimited-simulation",
		Name:        "Unlimited Simulations",
		Description: "Practice with unlimited virtual trades",
		Price:       0.002,
		Duration:    "7 days",
	},
	{
		ID:          "expert-feedback",
		Name:        "Expert AI Feedback",
		Description: "Detailed analysis of your trading decisions",
		Price:       0.0015,
		Duration:    "3 days",
	},
}

// Concepts returns the full concept catalog
func Concepts() []domain.Concept {
	return concepts
}

// ConceptByID looks up a catalog entry by its ID
func ConceptByID(id string) (domain.Concept, bool) {
	for _, c := range concepts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Concept{}, false
}

// PremiumFeatures returns the purchasable feature catalog
func PremiumFeatures() []domain.PremiumFeature {
	return premiumFeatures
}
