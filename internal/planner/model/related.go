package model

// Template is a reusable planning outline surfaced alongside plans.
type Template struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RelatedItem is a catalog listing or template ranked against the query by
// the relevance scorer.
type RelatedItem struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
}

const (
	RelatedKindVenue    = "venue"
	RelatedKindService  = "service"
	RelatedKindTemplate = "template"
)
