package vibe

import (
	"strconv"
	"strings"

	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// Scoring weights. Additive, unnormalized, no upper bound.
const (
	tagExactWeight    = 2.0
	tagPartialWeight  = 1.0
	nameMatchWeight   = 0.5
	categoryWeight    = 0.5
	groupTagBonus     = 1.0
	groupCategoryGood = 0.8
)

// Score computes the relevance of a place for a token set and mood
// group. It is a pure function of its inputs: no I/O, no randomness,
// so sort order is reproducible for identical inputs.
func Score(place model.Place, tokens []string, group MoodGroup) float64 {
	score := 0.0

	name := strings.ToLower(place.Name)
	category := strings.ToLower(place.Category)
	tags := dedup(lowerAll(place.Tags))

	for _, token := range tokens {
		tok := strings.ToLower(token)

		for _, tag := range tags {
			switch {
			case tag == tok:
				score += tagExactWeight
			case strings.Contains(tag, tok) || strings.Contains(tok, tag):
				score += tagPartialWeight
			}
		}

		if strings.Contains(name, tok) {
			score += nameMatchWeight
		}
		if strings.Contains(category, tok) {
			score += categoryWeight
		}
	}

	score += moodGroupBonus(category, tags, group)
	score += ratingBonus(place.Rating)

	return score
}

// moodGroupBonus rewards places whose category or tags match the
// detected mood group, up to groupTagBonus.
func moodGroupBonus(category string, tags []string, group MoodGroup) float64 {
	switch group {
	case GroupDown:
		if hasAnyTag(tags, "café", "tranquilo", "cozy", "introspectivo") {
			return groupTagBonus
		}
		if category == "café" || category == "cafetería" {
			return groupCategoryGood
		}
	case GroupParty:
		if hasAnyTag(tags, "antro", "fiesta", "reggaeton", "baile", "bellakeo") {
			return groupTagBonus
		}
		if category == "antro" || category == "nightclub" || category == "club" {
			return groupCategoryGood
		}
	case GroupChill:
		if hasAnyTag(tags, "chill", "relajado", "café", "cozy") {
			return groupTagBonus
		}
		if category == "café" || category == "cafetería" || category == "biblioteca" {
			return groupCategoryGood
		}
	case GroupProductive:
		if category == "café" || category == "cafetería" || category == "coworking" || category == "biblioteca" {
			return groupTagBonus
		}
		if hasAnyTag(tags, "productivo", "wifi", "estudio", "silencio") {
			return groupTagBonus
		}
	case GroupRomantic:
		if hasAnyTag(tags, "romántico", "elegante", "íntimo") {
			return groupTagBonus
		}
		if category == "restaurante" {
			return 0.5
		}
	case GroupFood:
		if category == "restaurante" || hasAnyTag(tags, "gourmet", "comida", "sabor") {
			return groupCategoryGood
		}
	case GroupCultural:
		if category == "museo" || category == "teatro" || category == "galería" {
			return groupTagBonus
		}
		if hasAnyTag(tags, "cultura", "arte", "historia") {
			return groupCategoryGood
		}
	case GroupOutdoor:
		if category == "parque" || category == "jardín" || category == "plaza" {
			return groupTagBonus
		}
		if hasAnyTag(tags, "naturaleza", "aire libre", "outdoor") {
			return groupCategoryGood
		}
	case GroupSocial:
		if hasAnyTag(tags, "familiar", "casual", "grupo") {
			return groupTagBonus
		}
		if category == "restaurante" || category == "parque" {
			return 0.5
		}
	}
	return 0
}

// ratingBonus bands a decimal-string rating into a quality bonus.
// Unparseable ratings count as zero.
func ratingBonus(rating string) float64 {
	r, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return 0
	}
	switch {
	case r >= 4.5:
		return 0.5
	case r >= 4.0:
		return 0.3
	case r >= 3.5:
		return 0.1
	}
	return 0
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func hasAnyTag(tags []string, wanted ...string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
