package model

// IntentType classifies what the user is primarily asking for. The engine
// uses it to decide whether venue recommendations belong in the plan.
type IntentType string

const (
	IntentVenueRequest     IntentType = "VENUE_REQUEST"
	IntentVendorRequest    IntentType = "VENDOR_REQUEST"
	IntentMarketingRequest IntentType = "MARKETING_REQUEST"
	IntentBudgetRequest    IntentType = "BUDGET_REQUEST"
	IntentMixedRequest     IntentType = "MIXED_REQUEST"
	IntentGeneralPlanning  IntentType = "GENERAL_PLANNING"
)

// Tone is the budget tier of the event, one axis of the dynamic budget
// multiplier stack.
type Tone string

const (
	ToneBudgetFriendly Tone = "budget-friendly"
	ToneStandard       Tone = "standard"
	TonePremium        Tone = "premium"
	ToneLuxury         Tone = "luxury"
)

// Urgency captures lead time. Last-minute events carry a price premium,
// well-planned ones a small discount.
type Urgency string

const (
	UrgencyLastMinute  Urgency = "last-minute"
	UrgencyShortNotice Urgency = "short-notice"
	UrgencyAdvance     Urgency = "advance"
	UrgencyFlexible    Urgency = "flexible"
)

// Intent is the structured understanding of a planning request. It is
// produced either by the language model extraction node or, when the model
// is unavailable, synthesised from lexical criteria alone.
type Intent struct {
	Type                IntentType `json:"intentType"`
	HasExistingVenue    bool       `json:"hasExistingVenue"`
	NeedsRecommendation bool       `json:"needsRecommendations"`
	EventType           string     `json:"eventType,omitempty"`
	EventTone           Tone       `json:"eventTone,omitempty"`
	GuestCount          int        `json:"guestCount,omitempty"`
	Location            string     `json:"location,omitempty"`
	BudgetSensitivity   string     `json:"budgetSensitivity,omitempty"`
	UserBudget          float64    `json:"userBudget,omitempty"`
	Urgency             Urgency    `json:"urgency,omitempty"`
	SpecialNeeds        []string   `json:"specialNeeds,omitempty"`
	UserPriorities      []string   `json:"userPriorities,omitempty"`
	MissingCriticalInfo []string   `json:"missingCriticalInfo,omitempty"`
	Reasoning           string     `json:"reasoning,omitempty"`
	ParsingErrors       []string   `json:"-"`
}

// FallbackIntent builds an Intent from lexical criteria when model
// extraction is skipped or fails.
func FallbackIntent(c SearchCriteria) *Intent {
	return &Intent{
		Type:                IntentGeneralPlanning,
		NeedsRecommendation: true,
		EventType:           c.EventType,
		EventTone:           ToneStandard,
		GuestCount:          c.GuestCount,
		Location:            c.Location,
		UserBudget:          float64(c.BudgetHint),
		Urgency:             UrgencyAdvance,
	}
}

// SuppressVenues reports whether venue recommendations should be omitted
// from the plan: the user already has a venue, or is asking only for
// vendors or marketing help.
func (i *Intent) SuppressVenues() bool {
	if i == nil {
		return false
	}
	if i.HasExistingVenue {
		return true
	}
	return i.Type == IntentVendorRequest || i.Type == IntentMarketingRequest
}

// Merge overlays lexical criteria onto the intent, letting regex-derived
// fields fill gaps the model left empty. Criteria never overwrite values
// the model extracted.
func (i *Intent) Merge(c SearchCriteria) {
	if i.EventType == "" {
		i.EventType = c.EventType
	}
	if i.Location == "" {
		i.Location = c.Location
	}
	if i.GuestCount == 0 {
		i.GuestCount = c.GuestCount
	}
	if i.UserBudget == 0 && c.BudgetHint > 0 {
		i.UserBudget = float64(c.BudgetHint)
	}
	if i.EventTone == "" {
		i.EventTone = ToneStandard
	}
	if i.Urgency == "" {
		i.Urgency = UrgencyAdvance
	}
	if i.Type == "" {
		i.Type = IntentGeneralPlanning
	}
}
