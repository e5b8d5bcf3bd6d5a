package keygen

import (
	"sort"

	"genrs/domain"
)

// presetLengths is the fixed table of named key presets. Not extensible at
// runtime.
var presetLengths = map[string]int{
	"aes128":    16,
	"aes192":    24,
	"aes256":    32,
	"hmac256":   32,
	"hmac512":   64,
	"jwt256":    32,
	"jwt512":    64,
	"apikey128": 16,
	"apikey256": 32,
}

// ResolveLength returns the key length in bytes for a request. A non-empty
// preset overrides the explicit length; otherwise the explicit length is
// used and must be positive.
func ResolveLength(preset string, length int) (int, error) {
	if preset != "" {
		n, ok := presetLengths[preset]
		if !ok {
			return 0, domain.NewUnknownPresetError(preset)
		}
		return n, nil
	}
	if length <= 0 {
		return 0, domain.NewInvalidLengthError(length)
	}
	return length, nil
}

// Presets returns the preset names in sorted order for help text.
func Presets() []string {
	names := make([]string, 0, len(presetLengths))
	for name := range presetLengths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
