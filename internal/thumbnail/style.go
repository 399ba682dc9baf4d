package thumbnail

// Style is a named visual treatment offered to users.
type Style string

const (
	StyleBoldGraphic    Style = "Bold & Graphic"
	StyleTechFuturistic Style = "Tech/Futuristic"
	StyleMinimalist     Style = "Minimalist"
	StylePhotorealistic Style = "Photorealistic"
	StyleIllustrated    Style = "Illustrated"
)

var styleDescriptions = map[Style]string{
	StyleBoldGraphic:    "eye-catching thumbnail, bold typography, vibrant colors, expressive facial reaction, dramatic lighting, high contrast, click-worthy composition, professional style",
	StyleTechFuturistic: "futuristic thumbnail, sleek modern design, digital UI elements, glowing accents, holographic effects, cyber-tech aesthetic, sharp lighting, high-tech atmosphere",
	StyleMinimalist:     "minimalist thumbnail, clean layout, simple shapes, limited color palette, plenty of negative space, modern flat design, clear focal point",
	StylePhotorealistic: "photorealistic thumbnail, ultra-realistic lighting, natural skin tones, candid moment, DSLR-style photography, lifestyle realism, shallow depth of field",
	StyleIllustrated:    "illustrated thumbnail, custom digital illustration, stylized characters, bold outlines, vibrant colors, creative cartoon or vector art style",
}

// Styles returns every style in catalog order.
func Styles() []Style {
	return []Style{
		StyleBoldGraphic,
		StyleTechFuturistic,
		StyleMinimalist,
		StylePhotorealistic,
		StyleIllustrated,
	}
}

// Valid reports whether s is one of the catalog styles.
func (s Style) Valid() bool {
	_, ok := styleDescriptions[s]
	return ok
}

// Description returns the phrase fed to the image model for s.
func (s Style) Description() string {
	return styleDescriptions[s]
}
