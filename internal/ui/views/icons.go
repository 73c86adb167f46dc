package views

import "strings"

// DefaultIcon is shown for condition text that matches nothing below
const DefaultIcon = "🌡"

// conditionIcons maps the condition strings weatherapi.com returns to glyphs
var conditionIcons = map[string]string{
	"sunny":                               "☀️",
	"clear":                               "🌙",
	"partly cloudy":                       "⛅",
	"cloudy":                              "☁️",
	"overcast":                            "☁️",
	"mist":                                "🌫",
	"fog":                                 "🌫",
	"freezing fog":                        "🌫",
	"patchy rain possible":                "🌦",
	"patchy rain nearby":                  "🌦",
	"light rain":                          "🌧",
	"moderate rain":                       "🌧",
	"moderate rain at times":              "🌧",
	"heavy rain":                          "🌧",
	"heavy rain at times":                 "🌧",
	"light rain shower":                   "🌦",
	"moderate or heavy rain shower":       "🌧",
	"torrential rain shower":              "🌧",
	"moderate or heavy freezing rain":     "🧊",
	"light snow":                          "🌨",
	"moderate snow":                       "🌨",
	"heavy snow":                          "❄️",
	"blizzard":                            "❄️",
	"thundery outbreaks possible":         "⛈",
	"thundery outbreaks in nearby":        "⛈",
	"patchy light rain with thunder":      "⛈",
	"moderate or heavy rain with thunder": "⛈",
}

// keywordIcons classifies unknown condition text, checked in order
var keywordIcons = []struct {
	keyword string
	icon    string
}{
	{"thunder", "⛈"},
	{"snow", "🌨"},
	{"sleet", "🌨"},
	{"ice", "🧊"},
	{"freezing", "🧊"},
	{"rain", "🌧"},
	{"drizzle", "🌦"},
	{"shower", "🌦"},
	{"fog", "🌫"},
	{"mist", "🌫"},
	{"cloud", "☁️"},
	{"overcast", "☁️"},
	{"sun", "☀️"},
	{"clear", "🌙"},
}

// ConditionIcon returns the glyph for a condition text. Exact matches are
// looked up first, then keywords, then DefaultIcon.
func ConditionIcon(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return DefaultIcon
	}
	if icon, ok := conditionIcons[key]; ok {
		return icon
	}
	for _, k := range keywordIcons {
		if strings.Contains(key, k.keyword) {
			return k.icon
		}
	}
	return DefaultIcon
}
