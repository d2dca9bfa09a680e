// Package normalize приводит имена городов и районов к канонической
// форме, по которой они сравниваются и хранятся в таксономии.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold раскладывает символы с диакритикой и отбрасывает
// комбинирующие знаки: ó -> o, ń -> n и т.д.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specials покрывает буквы, которые NFD не раскладывает
var specials = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"æ", "ae", "Æ", "AE",
	"ß", "ss",
)

// Name возвращает нормализованную форму имени: без диакритики,
// в нижнем регистре, без обрамляющих пробелов. Идемпотентна.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = specials.Replace(s)
	return strings.TrimSpace(strings.ToLower(s))
}
