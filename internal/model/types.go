package model

// Place is a venue record normalized from the places API response.
// Instances are built fresh per search response and never mutated after
// construction.
type Place struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	City           string   `json:"city"`
	Address        string   `json:"address"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Rating         string   `json:"google_rating"`
	PriceLevel     string   `json:"price_level"`
	OpeningHours   string   `json:"opening_hours"`
	Tags           []string `json:"tags"`
	ReviewSnippets []string `json:"review_snippets"`
	LastChecked    string   `json:"last_checked"`
	Media          []string `json:"media"`
}

// TranslationSource identifies which tier produced a Translation.
type TranslationSource string

const (
	SourceDictionary TranslationSource = "dictionary"
	SourceLLM        TranslationSource = "llm"
	SourceFallback   TranslationSource = "fallback"
)

// Translation is the result of resolving a raw vibe phrase into a
// search-ready query. A confidence below 0.7 means the phrase was not
// semantically resolved and callers may prefer the raw input.
type Translation struct {
	OriginalVibe    string            `json:"originalVibe"`
	TranslatedQuery string            `json:"translatedQuery"`
	Categories      []string          `json:"categories,omitempty"`
	Confidence      float64           `json:"confidence"`
	Source          TranslationSource `json:"source"`
	Cached          bool              `json:"cached,omitempty"`
}

// RankRequest is the inbound payload for a ranking request.
type RankRequest struct {
	Mood string `json:"mood"`
	City string `json:"city"`
}

// RankResponse is the final ordered result set. Relevance scores are
// internal to the pipeline and never appear here.
type RankResponse struct {
	Places      []Place `json:"places"`
	Total       int     `json:"total"`
	Explanation string  `json:"explanation,omitempty"`
	Message     string  `json:"message,omitempty"`
	Fallback    bool    `json:"fallback,omitempty"`
}
