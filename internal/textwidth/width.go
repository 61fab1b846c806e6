// Package textwidth measures and pads cell labels that mix ASCII digits with
// CJK lunar labels.
package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Width returns the widest line of s in monospace columns, ignoring ANSI
// colour codes. A Chinese character counts as two columns: the width is the
// GBK-encoded byte length, which matches terminal cells for the labels we
// print.
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, lineWidth(line))
	}
	return widest
}

func lineWidth(s string) int {
	clean := ansiRegexp.ReplaceAllString(s, "")
	if clean == "" {
		return 0
	}
	encoded, _, err := transform.String(simplifiedchinese.GBK.NewEncoder(), clean)
	if err != nil {
		return runeWidth(clean)
	}
	return len(encoded)
}

// runeWidth handles text GBK cannot encode, e.g. emoji.
func runeWidth(s string) int {
	width := 0
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
		case r <= unicode.MaxASCII:
			width++
		default:
			width += 2
		}
	}
	return width
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int) string {
	diff := width - Width(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// PadLeft prepends spaces until s is width columns wide.
func PadLeft(s string, width int) string {
	diff := width - Width(s)
	if diff <= 0 {
		return s
	}
	return strings.Repeat(" ", diff) + s
}

// Center pads s on both sides to width columns; odd padding goes right.
func Center(s string, width int) string {
	diff := width - Width(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}
