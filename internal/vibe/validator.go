package vibe

import (
	"strings"

	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// PrimaryVibe derives the single dominant vibe label from a token set.
// The profile table is scanned in order and the first profile owning
// any token wins. When nothing matches it returns DefaultVibe, whose
// rule set is the most permissive.
func PrimaryVibe(tokens []string) string {
	for _, p := range profiles {
		for _, tok := range tokens {
			lower := strings.ToLower(tok)
			for _, kw := range p.Keywords {
				if lower == kw {
					return p.Name
				}
			}
		}
	}
	return DefaultVibe
}

// Compatible reports whether a place's category is allowed for the
// given primary vibe. Unknown vibes impose no rules. Exclusion is
// checked first and is absolute; only then is the required set
// consulted.
func Compatible(primaryVibe string, place model.Place) bool {
	p, ok := profileByName(primaryVibe)
	if !ok {
		return true
	}
	return compatibleWithProfile(p, place)
}

func compatibleWithProfile(p Profile, place model.Place) bool {
	category := strings.ToLower(place.Category)

	for _, excluded := range p.Excluded {
		if category == excluded {
			return false
		}
	}

	if len(p.Required) > 0 {
		for _, required := range p.Required {
			if category == required {
				return true
			}
		}
		return false
	}

	return true
}

// VibeReason returns the human-readable rule rationale for a vibe, or
// an empty string for vibes without rules.
func VibeReason(primaryVibe string) string {
	if p, ok := profileByName(primaryVibe); ok {
		return p.Reason
	}
	return ""
}

// AvailableVibes lists every vibe that carries category rules.
func AvailableVibes() []string {
	var out []string
	for _, p := range profiles {
		if len(p.Excluded) > 0 || len(p.Required) > 0 {
			out = append(out, p.Name)
		}
	}
	return out
}

func profileByName(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
