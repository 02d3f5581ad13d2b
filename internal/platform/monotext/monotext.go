// Package monotext convierte texto ASCII al bloque unicode "Mathematical
// Monospace" para preservar el estilo tipografico del perfil
// (𝙷𝚘𝚕𝚊 𝚂𝚘𝚢 𝙰𝚗𝚐𝚎𝚕). Caracteres fuera de A-Z, a-z y 0-9 (acentos,
// emojis, puntuacion) se dejan intactos.
package monotext

import "strings"

// Offsets hacia los code points monospace.
const (
	upperBase = 0x1D670 // 𝙰
	lowerBase = 0x1D68A // 𝚊
	digitBase = 0x1D7F6 // 𝟶
)

// Convert transforma text a su forma monospace unicode.
func Convert(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, r := range text {
		b.WriteRune(mapRune(r))
	}
	return b.String()
}

// ConvertIf aplica la conversion solo cuando enabled es true.
// Util como filtro de plantilla controlado por el perfil.
func ConvertIf(enabled bool) func(string) string {
	if !enabled {
		return func(s string) string { return s }
	}
	return Convert
}

func mapRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return upperBase + (r - 'A')
	case r >= 'a' && r <= 'z':
		return lowerBase + (r - 'a')
	case r >= '0' && r <= '9':
		return digitBase + (r - '0')
	default:
		return r
	}
}
