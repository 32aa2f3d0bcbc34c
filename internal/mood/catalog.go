package mood

import "strings"

// Variant is one selectable mood: display name, client icon reference, the
// tip shown after selection, chart styling, and the reflective questions the
// journal screen asks for it.
type Variant struct {
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Emoji     string   `json:"emoji"`
	Color     string   `json:"color"`
	Tip       string   `json:"tip"`
	Questions []string `json:"questions"`
}

var variants = []Variant{
	{
		Name:  "Happy",
		Icon:  "mood_happy",
		Emoji: "😊",
		Color: "#FFCC00",
		Tip:   "Keep smiling and spread your joy! 😄",
		Questions: []string{
			"What made you feel happy today?",
			"Who or what contributed to this feeling?",
			"How can you repeat this tomorrow?",
		},
	},
	{
		Name:  "Calm",
		Icon:  "mood_calm",
		Emoji: "😌",
		Color: "#30B0C7",
		Tip:   "Take a deep breath and enjoy the peace 🧘‍♂️",
		Questions: []string{
			"What helped you feel calm today?",
			"How did it affect your day?",
			"Can you practice it again tomorrow?",
		},
	},
	{
		Name:  "Tired",
		Icon:  "mood_tired",
		Emoji: "🥱",
		Color: "#8E8E93",
		Tip:   "Rest your body and mind. 💤",
		Questions: []string{
			"Why did you feel tired today?",
			"Did you rest or take breaks?",
			"How can you improve your energy tomorrow?",
		},
	},
	{
		Name:  "Angry",
		Icon:  "mood_angry",
		Emoji: "😡",
		Color: "#FF3B30",
		Tip:   "Count to 10... then smile 🙂",
		Questions: []string{
			"What triggered your anger?",
			"How did you handle the situation?",
			"Would you do something differently next time?",
		},
	},
	{
		Name:  "Sad",
		Icon:  "mood_sad",
		Emoji: "😢",
		Color: "#007AFF",
		Tip:   "It's okay to feel sad. Treat yourself kindly 💙",
		Questions: []string{
			"What made you feel sad today?",
			"How did you respond to the feeling?",
			"What could help you feel better?",
		},
	},
	{
		Name:  "Stressed",
		Icon:  "mood_stress",
		Emoji: "🤯",
		Color: "#FF9500",
		Tip:   "Step back and take a few deep breaths 🫁",
		Questions: []string{
			"What caused your stress today?",
			"How did you cope with it?",
			"Is there anything you can change to reduce it?",
		},
	},
}

// fallback is returned for mood names outside the catalog, so an unknown
// mood still gets a usable question set and chart styling.
var fallback = Variant{
	Name:  "Default",
	Icon:  "mood_default",
	Emoji: "📝",
	Color: "#8E8E93",
	Questions: []string{
		"How did you feel today?",
		"What influenced your mood?",
		"How did you deal with it?",
	},
}

// Variants returns the ordered catalog.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant for name (case-insensitive). ok reports whether
// the name matched the catalog; when false the default variant is returned.
func Lookup(name string) (Variant, bool) {
	for _, v := range variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return fallback, false
}
