package parsers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/model"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

// basic safety limits to avoid pathological inputs
const (
	maxContentLen  = 64 * 1024 // 64KB
	maxListEntries = 32        // cap for string-list fields
	maxEntryLen    = 256       // cap per list entry
	maxGuestCount  = 1_000_000
	maxUserBudget  = 1_000_000_000
)

var intentTypes = map[string]model.IntentType{
	"VENUE_REQUEST":     model.IntentVenueRequest,
	"VENDOR_REQUEST":    model.IntentVendorRequest,
	"MARKETING_REQUEST": model.IntentMarketingRequest,
	"BUDGET_REQUEST":    model.IntentBudgetRequest,
	"MIXED_REQUEST":     model.IntentMixedRequest,
	"GENERAL_PLANNING":  model.IntentGeneralPlanning,
}

// ParseIntentResponse extracts the structured intent from a model reply.
// The reply is expected to be a JSON object, possibly wrapped in markdown
// fences or surrounded by prose; anything recoverable is kept and every
// irregularity is recorded in ParsingErrors rather than failing the run.
func ParseIntentResponse(content string) (intent *model.Intent, err error) {
	// panic safety
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("component", "intent_parser").Msgf("panic recovered: %v", r)
			err = errx.New(fmt.Errorf("intent parser panic"), http.StatusInternalServerError, errx.SystemErrorMessage)
			intent = nil
		}
	}()

	intent = &model.Intent{
		Type:                model.IntentGeneralPlanning,
		NeedsRecommendation: true,
		EventTone:           model.ToneStandard,
		Urgency:             model.UrgencyAdvance,
	}
	addErr := func(msg string) {
		intent.ParsingErrors = append(intent.ParsingErrors, msg)
	}

	// content length guard
	if len(content) > maxContentLen {
		logx.Warn().
			Str("component", "intent_parser").
			Int("max_len", maxContentLen).
			Int("orig_len", len(content)).
			Msg("content truncated due to size limit")
		content = content[:maxContentLen]
		addErr("truncated")
	}

	raw, ok := extractJSONObject(content)
	if !ok {
		return nil, errx.New(fmt.Errorf("no JSON object in model output"), http.StatusBadGateway, errx.SystemErrorMessage)
	}

	var m map[string]any
	if uerr := json.Unmarshal([]byte(raw), &m); uerr != nil {
		return nil, errx.New(fmt.Errorf("intent JSON: %w", uerr), http.StatusBadGateway, errx.SystemErrorMessage)
	}

	if v, ok := asString(m["intentType"]); ok {
		if it, known := intentTypes[strings.ToUpper(strings.TrimSpace(v))]; known {
			intent.Type = it
		} else {
			addErr("intentType: unknown value " + safeSnippet(v))
		}
	}

	if v, ok := asBool(m["hasExistingVenue"]); ok {
		intent.HasExistingVenue = v
	}
	if v, ok := asBool(m["needsRecommendations"]); ok {
		intent.NeedsRecommendation = v
	}

	if v, ok := asString(m["eventType"]); ok {
		intent.EventType = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := asString(m["location"]); ok {
		intent.Location = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := asString(m["budgetSensitivity"]); ok {
		intent.BudgetSensitivity = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := asString(m["reasoning"]); ok {
		intent.Reasoning = strings.TrimSpace(v)
	}

	if v, ok := asString(m["eventTone"]); ok {
		intent.EventTone = normalizeTone(v)
	}
	if v, ok := asString(m["urgency"]); ok {
		intent.Urgency = normalizeUrgency(v)
	}

	if v, ok, bad := asCount(m["guestCount"], maxGuestCount); bad {
		addErr("guestCount: invalid value")
	} else if ok {
		intent.GuestCount = v
	}
	if v, ok, bad := asAmount(m["userBudget"], maxUserBudget); bad {
		addErr("userBudget: invalid value")
	} else if ok {
		intent.UserBudget = v
	}

	intent.SpecialNeeds = asStringList(m["specialNeeds"], addErr, "specialNeeds")
	intent.UserPriorities = asStringList(m["userPriorities"], addErr, "userPriorities")
	intent.MissingCriticalInfo = asStringList(m["missingCriticalInfo"], addErr, "missingCriticalInfo")

	return intent, nil
}

// extractJSONObject finds the outermost {...} span, tolerating markdown
// fences and prose around the object.
func extractJSONObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}

func normalizeTone(v string) model.Tone {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "luxury", "ultra-luxury":
		return model.ToneLuxury
	case "premium", "upscale", "formal":
		return model.TonePremium
	case "budget-friendly", "budget", "cheap", "economical":
		return model.ToneBudgetFriendly
	default:
		return model.ToneStandard
	}
}

func normalizeUrgency(v string) model.Urgency {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "last-minute", "rush", "asap", "urgent":
		return model.UrgencyLastMinute
	case "short-notice", "soon":
		return model.UrgencyShortNotice
	case "flexible", "no-rush":
		return model.UrgencyFlexible
	default:
		return model.UrgencyAdvance
	}
}

// --- coercion helpers ---

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	switch vv := v.(type) {
	case bool:
		return vv, true
	case string:
		switch strings.ToLower(strings.TrimSpace(vv)) {
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
	}
	return false, false
}

// asCount coerces a JSON value into a non-negative int. The third return
// flags a present-but-unusable value.
func asCount(v any, max int) (int, bool, bool) {
	switch vv := v.(type) {
	case nil:
		return 0, false, false
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) || vv < 0 || vv > float64(max) {
			return 0, false, true
		}
		return int(vv), true, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(vv))
		if err != nil || n < 0 || n > max {
			return 0, false, true
		}
		return n, true, false
	default:
		return 0, false, true
	}
}

func asAmount(v any, max float64) (float64, bool, bool) {
	switch vv := v.(type) {
	case nil:
		return 0, false, false
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) || vv < 0 || vv > max {
			return 0, false, true
		}
		return vv, true, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(vv), 64)
		if err != nil || f < 0 || f > max {
			return 0, false, true
		}
		return f, true, false
	default:
		return 0, false, true
	}
}

func asStringList(v any, addErr func(string), name string) []string {
	if v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		addErr(name + ": not a list")
		return nil
	}
	if len(arr) > maxListEntries {
		addErr(name + ": list capped")
		arr = arr[:maxListEntries]
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			addErr(name + ": non-string entry")
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if len(s) > maxEntryLen {
			s = s[:maxEntryLen]
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func safeSnippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 40 {
		return s
	}
	return s[:40]
}
