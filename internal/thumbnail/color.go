package thumbnail

// ColorScheme is a named palette a thumbnail can be rendered with.
type ColorScheme string

const (
	ColorVibrant    ColorScheme = "vibrant"
	ColorSunset     ColorScheme = "sunset"
	ColorForest     ColorScheme = "forest"
	ColorNeon       ColorScheme = "neon"
	ColorPurple     ColorScheme = "purple"
	ColorMonochrome ColorScheme = "monochrome"
	ColorOcean      ColorScheme = "ocean"
	ColorPastel     ColorScheme = "pastel"
)

var colorDescriptions = map[ColorScheme]string{
	ColorVibrant:    "vibrant and energetic colors, high saturation, bold contrasts",
	ColorSunset:     "warm sunset tones, orange pink and purple hues",
	ColorForest:     "natural green tones, earthy colors, calm and organic palette",
	ColorNeon:       "neon glow effects, electric blues and pinks, cyberpunk lighting",
	ColorPurple:     "purple-dominant palette, modern stylish mood",
	ColorMonochrome: "black and white color scheme, dramatic lighting",
	ColorOcean:      "cool blue and teal tones, aquatic palette",
	ColorPastel:     "soft pastel colors, calm and friendly aesthetic",
}

func ColorSchemes() []ColorScheme {
	return []ColorScheme{
		ColorVibrant,
		ColorSunset,
		ColorForest,
		ColorNeon,
		ColorPurple,
		ColorMonochrome,
		ColorOcean,
		ColorPastel,
	}
}

func (c ColorScheme) Valid() bool {
	_, ok := colorDescriptions[c]
	return ok
}

func (c ColorScheme) Description() string {
	return colorDescriptions[c]
}
