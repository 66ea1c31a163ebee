package domain

// Concept is a static educational catalog entry, never created or destroyed
// at runtime
type Concept struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ContentType   string `json:"content_type"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime int    `json:"estimated_time"` // in minutes
	Category      string `json:"category"`
}

// ContentType constants
const (
	ContentVideo       = "video"
	ContentInfographic = "infographic"
)

// Difficulty constants
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// PremiumFeature is a static catalog entry for a purchasable feature
type PremiumFeature struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // in ETH
	Duration    string  `json:"duration"`
}
