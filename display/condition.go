package display

// Category groups weatherapi.com condition codes.
// https://www.weatherapi.com/docs/weather_conditions.json
type Category int

const (
	Unknown Category = iota
	Thunderstorm
	Drizzle
	Rain
	Snow
	Atmosphere
	Sunny
	Cloudy
)

var categoryNames = map[Category]string{
	Unknown:      "unknown",
	Thunderstorm: "thunderstorm",
	Drizzle:      "drizzle",
	Rain:         "rain",
	Snow:         "snow",
	Atmosphere:   "atmosphere",
	Sunny:        "sunny",
	Cloudy:       "cloudy",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Unknown]
}

const sunnyCode = 1000

var (
	thunderstormCodes = codeSet(1087, 1273, 1276, 1279, 1282)
	drizzleCodes      = codeSet(1072, 1150, 1153, 1168, 1171)
	rainCodes         = codeSet(1063, 1180, 1183, 1186, 1189, 1192, 1195, 1198, 1201, 1240, 1243, 1246, 1249)
	snowCodes         = codeSet(1066, 1069, 1114, 1204, 1207, 1210, 1213, 1216, 1219, 1222, 1225, 1237, 1252, 1255, 1258, 1261, 1264)
	atmosphereCodes   = codeSet(1030, 1135, 1147)
	cloudyCodes       = codeSet(1003, 1006, 1009)
)

// Appearance is how a category is drawn on the terminal.
type Appearance struct {
	Glyph string
	Color Color
}

var appearances = map[Category]Appearance{
	Thunderstorm: {Glyph: "💥", Color: Red},
	Drizzle:      {Glyph: "💧", Color: Cyan},
	Rain:         {Glyph: "💦", Color: Blue},
	Snow:         {Glyph: "⛄️", Color: White},
	Atmosphere:   {Glyph: "🌀", Color: Blue},
	Sunny:        {Glyph: "🔆", Color: Yellow},
	Cloudy:       {Glyph: "💨", Color: White},
	Unknown:      {Glyph: "🌈", Color: Reset},
}

// Categorize maps a condition code to its category. The checks run in a fixed
// order and the first match wins, so overlapping tables stay deterministic.
func Categorize(code int) Category {
	switch {
	case thunderstormCodes[code]:
		return Thunderstorm
	case drizzleCodes[code]:
		return Drizzle
	case rainCodes[code]:
		return Rain
	case snowCodes[code]:
		return Snow
	case atmosphereCodes[code]:
		return Atmosphere
	case code == sunnyCode:
		return Sunny
	case cloudyCodes[code]:
		return Cloudy
	default:
		return Unknown
	}
}

// Classify returns the glyph and colour used to render a condition code.
// Codes the provider adds later fall back to the Unknown appearance.
func Classify(code int) (string, Color) {
	a := AppearanceOf(Categorize(code))
	return a.Glyph, a.Color
}

func AppearanceOf(c Category) Appearance {
	if a, ok := appearances[c]; ok {
		return a
	}
	return appearances[Unknown]
}

func codeSet(codes ...int) map[int]bool {
	set := make(map[int]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}
