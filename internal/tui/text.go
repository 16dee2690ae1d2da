package tui

import (
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// FitWidth shortens s to at most n bytes of EUC-JP, which is also its cell
// width on the console: one byte per ASCII cell, two per full-width
// character. Characters EUC-JP cannot represent, and control characters,
// are dropped instead of failing.
func FitWidth(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}

	enc := japanese.EUCJP.NewEncoder()
	buf := make([]byte, 0, n)
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil || len(b) == 0 || (len(b) == 1 && b[0] == encoding.ASCIISub) {
			continue
		}
		if len(buf)+len(b) > n {
			break
		}
		buf = append(buf, b...)
	}

	out, err := japanese.EUCJP.NewDecoder().Bytes(buf)
	if err != nil {
		return ""
	}
	return string(out)
}
