// Package query turns free-text planning requests into structured search
// criteria using lexical heuristics only. It never calls a model; the
// matching is substring and regex based, case-insensitive, first-match-wins.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/model"
)

// locationSynonym maps a query phrase to its canonical city. Declaration
// order matters: the first key contained in the query wins, so short
// ambiguous aliases sit after the phrases that contain them.
type locationSynonym struct {
	Alias     string
	Canonical string
}

var locationSynonyms = []locationSynonym{
	{"sfo", "san francisco"},
	{"sf", "san francisco"},
	{"bay area", "san francisco"},
	{"silicon valley", "san francisco"},
	{"nyc", "new york"},
	{"ny", "new york"},
	{"manhattan", "new york"},
	{"brooklyn", "new york"},
	{"boston", "boston"},
	{"bos", "boston"},
	{"cambridge", "boston"},
	{"san francisco", "san francisco"},
	{"new york", "new york"},
	{"los angeles", "los angeles"},
	{"la", "los angeles"},
	{"chicago", "chicago"},
	{"miami", "miami"},
	{"seattle", "seattle"},
	{"austin", "austin"},
	{"denver", "denver"},
}

// eventTypes is the fixed detection list; first literal substring match wins.
var eventTypes = []string{"wedding", "corporate", "conference", "social", "gala", "party"}

var (
	guestPattern  = regexp.MustCompile(`(?i)(\d+)[\s-]*(guest|person|people|attendee)`)
	budgetPattern = regexp.MustCompile(`(?i)budget[:\s]+\$?(\d+)([kK])?`)
)

// Normalize derives search criteria from raw text. Absent signals stay at
// their zero values; Normalize itself never fails.
func Normalize(rawText string) model.SearchCriteria {
	lower := strings.ToLower(rawText)

	var c model.SearchCriteria

	for _, syn := range locationSynonyms {
		if strings.Contains(lower, syn.Alias) {
			c.Location = syn.Canonical
			break
		}
	}

	for _, et := range eventTypes {
		if strings.Contains(lower, et) {
			c.EventType = et
			break
		}
	}

	if m := guestPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.GuestCount = n
		}
	}

	c.BudgetHint = ParseBudget(rawText)

	return c
}

// ParseBudget extracts an explicit budget mention, expanding a trailing
// k/K suffix to thousands. Returns 0 when no budget is mentioned.
func ParseBudget(rawText string) int {
	m := budgetPattern.FindStringSubmatch(rawText)
	if m == nil {
		return 0
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if m[2] != "" {
		amount *= 1000
	}
	return amount
}

// Validate rejects criteria that violate the caller contract. Absent values
// are fine; nonsensical ones are not, and downstream components rely on
// never seeing them. Zero is treated as "unspecified" everywhere, never as
// an invalid value; only negatives are rejected (see DESIGN.md).
func Validate(c model.SearchCriteria) error {
	if c.GuestCount < 0 {
		return errx.NewValidation(fmt.Errorf("guest count %d is negative", c.GuestCount))
	}
	if c.BudgetHint < 0 {
		return errx.NewValidation(fmt.Errorf("budget hint %d is negative", c.BudgetHint))
	}
	return nil
}

// ValidateIntent applies the same contract to model-supplied intents, which
// arrive from outside the engine and may carry arbitrary values.
func ValidateIntent(i *model.Intent) error {
	if i == nil {
		return nil
	}
	if i.GuestCount < 0 {
		return errx.NewValidation(fmt.Errorf("guest count %d is negative", i.GuestCount))
	}
	if i.UserBudget < 0 {
		return errx.NewValidation(fmt.Errorf("user budget %.2f is negative", i.UserBudget))
	}
	return nil
}
