package tables

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsIdentRune reports whether r may continue an identifier. Marks are
// included because source lines are NFKD normalized, which splits accented
// letters into a base letter and a combining mark.
func IsIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Matcher recognizes the longest spelling from a fixed alphabet at the start
// of a string. Spellings ending in an identifier character only match when
// the next character cannot continue an identifier, so "forever" never
// matches "for".
type Matcher struct {
	spellings []string
}

func NewMatcher(spellings ...[]string) *Matcher {
	var all []string
	seen := map[string]bool{}
	for _, list := range spellings {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				all = append(all, s)
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})
	return &Matcher{spellings: all}
}

// Match returns the matched spelling.
func (m *Matcher) Match(s string) (string, bool) {
	spelling, n := m.match(s)
	return spelling, n > 0
}

// Len returns how many bytes of s the match covers, 0 for no match. This
// differs from the spelling length when a two-word spelling is written
// with more than one space.
func (m *Matcher) Len(s string) int {
	_, n := m.match(s)
	return n
}

func (m *Matcher) match(s string) (string, int) {
	for _, spelling := range m.spellings {
		n := prefixLen(s, spelling)
		if n <= 0 {
			continue
		}
		if wordLike(spelling) {
			next, _ := utf8.DecodeRuneInString(s[n:])
			if next != utf8.RuneError && IsIdentRune(next) {
				continue
			}
		}
		return spelling, n
	}
	return "", 0
}

// prefixLen returns the length of the prefix of s that spells spelling, or
// -1. A space in spelling stands for any run of spaces and tabs.
func prefixLen(s, spelling string) int {
	n := 0
	for i := 0; i < len(spelling); i++ {
		if spelling[i] != ' ' {
			if n >= len(s) || s[n] != spelling[i] {
				return -1
			}
			n++
			continue
		}
		start := n
		for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
			n++
		}
		if n == start {
			return -1
		}
	}
	return n
}

// Canonical collapses the blanks inside a lexed spelling, so "not \t in"
// looks up as "not in".
func Canonical(text string) string {
	if !strings.ContainsAny(text, " \t") {
		return text
	}
	return strings.Join(strings.Fields(text), " ")
}

func wordLike(s string) bool {
	last, _ := utf8.DecodeLastRuneInString(s)
	return IsIdentRune(last)
}
