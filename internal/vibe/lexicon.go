// Package vibe turns free-text mood input into tokens, a coarse mood
// group and a primary vibe, and scores places against them. All tables
// here are static; the package holds no mutable state.
package vibe

// MoodGroup is a coarse mood classification. The zero value GroupNone
// means no strong group was detected and is a normal outcome.
type MoodGroup string

const (
	GroupNone       MoodGroup = ""
	GroupDown       MoodGroup = "mood_down"
	GroupParty      MoodGroup = "mood_party"
	GroupChill      MoodGroup = "mood_chill"
	GroupProductive MoodGroup = "mood_productive"
	GroupRomantic   MoodGroup = "mood_romantic"
	GroupSocial     MoodGroup = "mood_social"
	GroupAdventure  MoodGroup = "mood_adventure"
	GroupCultural   MoodGroup = "mood_cultural"
	GroupFood       MoodGroup = "mood_food"
	GroupOutdoor    MoodGroup = "mood_outdoor"
)

// Profile is one entry of the canonical vibe-classification table. It
// ties a primary vibe to its trigger keywords, its mood group and its
// category-compatibility rules, so group detection and category
// validation can never disagree about what a keyword means.
//
// A Profile with no Excluded and no Required entries classifies only;
// every place is compatible with it.
type Profile struct {
	Name     string
	Group    MoodGroup
	Keywords []string
	Excluded []string
	Required []string
	Reason   string
}

// profiles is scanned in order; the first profile with a keyword
// contained in the input wins. The ordering ambiguity is accepted.
var profiles = []Profile{
	{
		Name:     "sad",
		Group:    GroupDown,
		Keywords: []string{"bajoneado", "deprimido", "triste", "melancólico", "sad", "downbad", "solo", "nostálgico"},
		Excluded: []string{"antro", "club"},
		Required: []string{"café", "cafetería", "parque", "bar", "restaurante"},
		Reason:   "espacios tranquilos para reflexionar",
	},
	{
		Name:     "bellakeo",
		Group:    GroupParty,
		Keywords: []string{"bellakeo", "fiesta", "perrea", "perreo", "reggaeton", "dembow", "antro", "baile", "noche", "urbano"},
		Excluded: []string{"parque", "plaza", "biblioteca", "museo", "universidad", "cafetería"},
		Required: []string{"antro", "bar", "club", "salón", "restaurante", "nightclub"},
		Reason:   "música fuerte y espacio de baile",
	},
	{
		Name:     "productivo",
		Group:    GroupProductive,
		Keywords: []string{"productivo", "trabajo", "estudio", "concentración", "grind", "focus", "wifi"},
		Excluded: []string{"antro", "bar", "club", "salón"},
		Required: []string{"café", "cafetería", "biblioteca", "coworking", "universidad"},
		Reason:   "silencio y concentración",
	},
	{
		Name:     "romántico",
		Group:    GroupRomantic,
		Keywords: []string{"romántico", "íntimo", "pareja", "date", "elegante", "cena", "especial"},
		Excluded: []string{"antro", "biblioteca", "universidad"},
		Required: []string{"restaurante", "bar", "café", "cafetería", "mirador"},
		Reason:   "ambiente íntimo",
	},
	{
		Name:     "eco",
		Group:    GroupOutdoor,
		Keywords: []string{"eco", "naturaleza", "verde", "outdoor", "aire libre", "ejercicio"},
		Excluded: []string{"antro", "bar", "club"},
		Required: []string{"parque", "jardín", "naturaleza", "plaza"},
		Reason:   "espacios naturales o al aire libre",
	},
	{
		Name:     "familiar",
		Group:    GroupSocial,
		Keywords: []string{"familiar", "familia", "niños", "amigos", "grupo", "compartir", "casual"},
		Excluded: []string{"antro", "bar", "club"},
		Required: []string{"restaurante", "parque", "museo", "plaza", "zona", "atracción"},
		Reason:   "espacios apropiados para niños",
	},
	{
		Name:     "cultura",
		Group:    GroupCultural,
		Keywords: []string{"cultura", "arte", "museo", "teatro", "galería", "historia", "tradicional"},
		Excluded: []string{"antro", "club"},
		Required: []string{"museo", "teatro", "galería", "zona", "universidad"},
		Reason:   "espacios educativos o artísticos",
	},
	{
		Name:     "chill",
		Group:    GroupChill,
		Keywords: []string{"chill", "relajado", "tranquilo", "cozy", "lofi", "café"},
		Excluded: []string{},
		Required: []string{"café", "cafetería", "restaurante", "bar", "parque", "plaza"},
		Reason:   "espacios relajados variados",
	},
	// Classification-only profiles: they set a mood group but impose no
	// category rules.
	{
		Name:     "comida",
		Group:    GroupFood,
		Keywords: []string{"hambre", "comer", "gourmet", "sabor", "delicioso", "mariscos", "botanear"},
	},
	{
		Name:     "aventura",
		Group:    GroupAdventure,
		Keywords: []string{"nuevo", "explorar", "diferente", "único", "experiencia"},
	},
}

// DefaultVibe is the safe fallback primary vibe; its rule set is the
// most permissive one.
const DefaultVibe = "chill"

type lexiconEntry struct {
	key        string
	expansions []string
}

// lexicon expands colloquial mood vocabulary into related search
// tokens. Kept as an ordered slice so token insertion order, and with
// it query-building priority, is deterministic.
var lexicon = []lexiconEntry{
	// Mood down
	{"bajoneado", []string{"melancólico", "introspectivo", "tranquilo", "café", "solo", "pensativo"}},
	{"deprimido", []string{"melancólico", "introspectivo", "tranquilo", "café", "contemplativo"}},
	{"triste", []string{"melancólico", "nostálgico", "tranquilo", "introspectivo"}},
	{"sad", []string{"melancólico", "nostálgico", "introspectivo", "contemplativo"}},
	{"downbad", []string{"melancólico", "solo", "introspectivo", "café"}},
	{"solo", []string{"tranquilo", "café", "introspectivo", "contemplativo"}},
	{"melancólico", []string{"nostálgico", "introspectivo", "tranquilo", "pensativo"}},
	{"nostálgico", []string{"melancólico", "tradicional", "vintage", "retro"}},

	// Party
	{"bellakeo", []string{"reggaeton", "fiesta", "perrea", "antro", "dembow", "urbano", "noche"}},
	{"perrea", []string{"reggaeton", "bellakeo", "fiesta", "antro", "dembow", "baile"}},
	{"reggaeton", []string{"bellakeo", "perrea", "fiesta", "antro", "urbano"}},
	{"fiesta", []string{"música", "baile", "noche", "diversión", "bellakeo", "antro"}},
	{"antro", []string{"fiesta", "noche", "bellakeo", "joven", "música"}},
	{"baile", []string{"música", "fiesta", "noche", "diversión"}},

	// Chill
	{"chill", []string{"relajado", "café", "tranquilo", "cozy", "lofi", "productivo"}},
	{"relajado", []string{"chill", "tranquilo", "cozy", "café", "descanso"}},
	{"tranquilo", []string{"chill", "relajado", "cozy", "silencio", "paz"}},
	{"cozy", []string{"chill", "relajado", "acogedor", "café", "íntimo"}},
	{"productivo", []string{"trabajo", "estudio", "wifi", "silencio", "focus", "café"}},
	{"trabajo", []string{"productivo", "wifi", "silencio", "café", "oficina"}},
	{"estudio", []string{"productivo", "silencio", "wifi", "biblioteca", "focus"}},

	// Romantic
	{"romántico", []string{"íntimo", "pareja", "elegante", "cena", "especial", "terraza"}},
	{"pareja", []string{"romántico", "íntimo", "especial", "cena", "privado"}},
	{"íntimo", []string{"romántico", "pareja", "acogedor", "privado", "especial"}},
	{"cena", []string{"romántico", "elegante", "noche", "especial", "gourmet"}},

	// Place categories
	{"café", []string{"chill", "productivo", "tranquilo", "trabajo", "cozy"}},
	{"bar", []string{"noche", "cóctel", "amigos", "relajado", "social"}},
	{"restaurante", []string{"comida", "cena", "familiar", "gourmet", "sabor"}},
	{"museo", []string{"cultura", "arte", "educativo", "tranquilo", "inspirador"}},
	{"parque", []string{"aire libre", "ejercicio", "familiar", "naturaleza", "relajado"}},

	// Specific qualities
	{"elegante", []string{"sofisticado", "exclusivo", "gourmet", "romántico", "especial"}},
	{"casual", []string{"familiar", "relajado", "sencillo", "económico", "cómodo"}},
	{"tradicional", []string{"auténtico", "familiar", "cultura", "historia", "típico"}},
	{"moderno", []string{"contemporáneo", "trendy", "nuevo", "innovador", "actual"}},
	{"familiar", []string{"niños", "grupo", "casual", "acogedor", "tradicional"}},
}

// Term kinds used by the query builder to prioritise tokens. Activity
// terms beat atmosphere terms beat plain place categories.
var (
	activityTerms   = []string{"baile", "bellakeo", "perrea", "fiesta", "trabajo", "estudio", "ejercicio", "cena", "botanear", "comer"}
	atmosphereTerms = []string{"romántico", "chill", "tranquilo", "relajado", "cozy", "elegante", "íntimo", "melancólico", "productivo", "casual", "moderno", "tradicional"}
	categoryTerms   = []string{"antro", "bar", "café", "cafetería", "restaurante", "museo", "parque", "biblioteca", "teatro", "galería", "plaza", "club"}
)

// ActivityTerms lists tokens that name something to do.
func ActivityTerms() []string { return activityTerms }

// AtmosphereTerms lists tokens that name a mood or ambience.
func AtmosphereTerms() []string { return atmosphereTerms }

// CategoryTerms lists tokens that name a place type directly.
func CategoryTerms() []string { return categoryTerms }
