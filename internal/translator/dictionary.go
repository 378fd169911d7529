package translator

import "strings"

type dictEntry struct {
	vibe       string
	query      string
	categories []string
	confidence float64
}

// dictionary maps the ~30 highest-traffic colloquial vibes to
// English search queries plus Foursquare category ids. Ordered so that
// best-match scanning is deterministic.
var dictionary = []dictEntry{
	// Nightlife & party
	{"bellakeo", "nightclub dance reggaeton", []string{"13002"}, 0.95},
	{"perreo", "dance club reggaeton", []string{"13002"}, 0.95},
	{"antro", "nightclub bar", []string{"13002", "13003"}, 0.9},
	{"reventón", "party venue nightclub", []string{"13002"}, 0.85},
	{"fiesta", "party nightlife", []string{"13002"}, 0.8},
	{"baile", "dance club", []string{"13002"}, 0.8},

	// Romance & dating
	{"romántico", "romantic restaurant intimate", []string{"13065"}, 0.9},
	{"íntimo", "intimate restaurant cozy", []string{"13065"}, 0.85},
	{"cena", "dinner restaurant", []string{"13065"}, 0.8},
	{"date", "romantic restaurant", []string{"13065"}, 0.8},
	{"pareja", "romantic dining", []string{"13065"}, 0.8},

	// Chill & relaxed
	{"chill", "coffee shop relaxed", []string{"13032"}, 0.85},
	{"tranquilo", "quiet cafe peaceful", []string{"13032"}, 0.85},
	{"relajado", "relaxed atmosphere", []string{"13032", "13003"}, 0.8},
	{"cozy", "cozy cafe comfortable", []string{"13032"}, 0.85},

	// Productive & work
	{"productivo", "coffee shop wifi work", []string{"13032"}, 0.9},
	{"trabajo", "coworking cafe wifi", []string{"13032"}, 0.85},
	{"estudio", "study space quiet", []string{"13032"}, 0.85},
	{"wifi", "coffee shop internet", []string{"13032"}, 0.8},
	{"focus", "quiet workspace", []string{"13032"}, 0.8},

	// Food & dining
	{"botanear", "bar appetizers tapas", []string{"13003"}, 0.9},
	{"mariscos", "seafood restaurant", []string{"13065"}, 0.95},
	{"gourmet", "fine dining restaurant", []string{"13065"}, 0.9},
	{"tradicional", "traditional restaurant local", []string{"13065"}, 0.85},
	{"comida", "restaurant food", []string{"13065"}, 0.7},

	// Culture & arts
	{"cultura", "museum cultural center", []string{"10000"}, 0.85},
	{"arte", "art gallery museum", []string{"10000"}, 0.85},
	{"museo", "museum", []string{"10000"}, 0.95},
	{"teatro", "theater", []string{"10000"}, 0.95},

	// Nature & outdoor
	{"aire libre", "outdoor park", []string{"16000"}, 0.8},
	{"parque", "park outdoor", []string{"16000"}, 0.9},
	{"naturaleza", "nature outdoor", []string{"16000"}, 0.8},
}

// Confidence scaling for non-exact dictionary matches. Whole-word
// matches are trusted more than substring containment.
const (
	wordMatchScale    = 0.9
	partialMatchScale = 0.7
)

// searchDictionary resolves a normalized phrase against the dictionary:
// exact match first, then the best-scoring word or substring match.
// Returns ok=false when no entry matched at all.
func searchDictionary(phrase string) (dictEntry, float64, bool) {
	for _, e := range dictionary {
		if e.vibe == phrase {
			return e, e.confidence, true
		}
	}

	words := strings.Fields(phrase)
	var best dictEntry
	bestScore := 0.0

	for _, e := range dictionary {
		for _, w := range words {
			if w == e.vibe {
				if s := e.confidence * wordMatchScale; s > bestScore {
					best, bestScore = e, s
				}
			}
		}
		if strings.Contains(phrase, e.vibe) || strings.Contains(e.vibe, phrase) {
			if s := e.confidence * partialMatchScale; s > bestScore {
				best, bestScore = e, s
			}
		}
	}

	return best, bestScore, bestScore > 0
}
