package places

import (
	"strings"

	"github.com/yourcityvibes/vibes-backend/internal/vibe"
)

// categoryIDs maps lowercase place-type tokens to Foursquare category
// ids.
var categoryIDs = map[string]string{
	// Food & dining
	"restaurante": "13065",
	"restaurant":  "13065",
	"café":        "13032",
	"cafetería":   "13032",
	"cafe":        "13032",

	// Nightlife
	"bar":       "13003",
	"antro":     "13002",
	"nightclub": "13002",
	"club":      "13002",

	// Arts & culture
	"museo":   "10019",
	"museum":  "10019",
	"teatro":  "10007",
	"theater": "10007",
	"galería": "10002",

	// Outdoors
	"parque": "16032",
	"park":   "16032",
}

// moodGroupCategories supplies default category ids when the mood group
// is known but the tokens named no concrete place type.
var moodGroupCategories = map[vibe.MoodGroup][]string{
	vibe.GroupParty:      {"13003", "13002"},
	vibe.GroupRomantic:   {"13065"},
	vibe.GroupChill:      {"13032", "13003"},
	vibe.GroupProductive: {"13032"},
	vibe.GroupDown:       {"13032"},
	vibe.GroupFood:       {"13065", "13032"},
	vibe.GroupCultural:   {"10019", "10007"},
	vibe.GroupOutdoor:    {"16032"},
}

// BuildQuery turns a token list and mood group into the external query
// string and comma-joined category filter. Token kinds are prioritised
// in fixed order: activity first, then atmosphere, then plain place
// category, taking the first found of each kind. When none of the
// kinds match, the first two raw tokens stand in.
func BuildQuery(tokens []string, group vibe.MoodGroup) (query string, categories string) {
	var parts []string
	if t, ok := firstOfKind(tokens, vibe.ActivityTerms()); ok {
		parts = append(parts, t)
	}
	if t, ok := firstOfKind(tokens, vibe.AtmosphereTerms()); ok {
		parts = append(parts, t)
	}
	if t, ok := firstOfKind(tokens, vibe.CategoryTerms()); ok {
		parts = append(parts, t)
	}
	if len(parts) == 0 {
		for i, t := range tokens {
			if i == 2 {
				break
			}
			parts = append(parts, t)
		}
	}

	var ids []string
	for _, t := range tokens {
		if id, ok := categoryIDs[strings.ToLower(t)]; ok && !contains(ids, id) {
			ids = append(ids, id)
		}
	}
	for _, id := range moodGroupCategories[group] {
		if !contains(ids, id) {
			ids = append(ids, id)
		}
	}

	return strings.Join(parts, " "), strings.Join(ids, ",")
}

func firstOfKind(tokens, kind []string) (string, bool) {
	for _, t := range tokens {
		lower := strings.ToLower(t)
		for _, k := range kind {
			if lower == k {
				return lower, true
			}
		}
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
