package models

// PresetStyle identifies a passphrase formatting style
type PresetStyle string

const (
	// PresetStyleDefault joins words as-is with single spaces
	PresetStyleDefault PresetStyle = "default"

	// PresetStylePascal joins capitalized words with no delimiter
	PresetStylePascal PresetStyle = "pascal"

	// PresetStyleKebab joins words with hyphens
	PresetStyleKebab PresetStyle = "kebab"

	// PresetStyleSnake joins words with underscores
	PresetStyleSnake PresetStyle = "snake"

	// PresetStyleArbitrary joins words using caller-provided parameters
	PresetStyleArbitrary PresetStyle = "arbitrary"
)

// Preset describes how a passphrase is rendered as a single string
type Preset struct {
	// Style selects the formatting behavior
	Style PresetStyle

	// Capitalize uppercases the first letter of each word; honored only
	// by the arbitrary style
	Capitalize bool

	// Delimiter joins words; honored only by the arbitrary style, nil
	// falls back to a single space
	Delimiter *string
}

// DefaultPreset returns the preset used when nothing was requested
func DefaultPreset() Preset {
	return Preset{Style: PresetStyleDefault}
}

// NewArbitraryPreset returns a preset with caller-provided capitalization
// and delimiter
func NewArbitraryPreset(capitalize bool, delimiter *string) Preset {
	return Preset{
		Style:      PresetStyleArbitrary,
		Capitalize: capitalize,
		Delimiter:  delimiter,
	}
}

// PresetFromName maps a preset name to its Preset. Unknown names map to
// the default preset
func PresetFromName(name string) Preset {
	switch name {
	case "pascal":
		return Preset{Style: PresetStylePascal}
	case "kebab":
		return Preset{Style: PresetStyleKebab}
	case "snake":
		return Preset{Style: PresetStyleSnake}
	default:
		return DefaultPreset()
	}
}

// KnownPresetName reports whether name identifies a named preset
func KnownPresetName(name string) bool {
	switch name {
	case "pascal", "kebab", "snake":
		return true
	default:
		return false
	}
}
