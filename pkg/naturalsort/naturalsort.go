// Package naturalsort orders catalog color names naturally.
// Color names follow the pattern `^(?:[A-Z]{1,2})?\d{1,7}$`; all-digit names
// sort numerically before lettered ones, and lettered names sort by their
// alpha prefix then numerically.
package naturalsort

import (
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// key tiers: empty < all-digits < alpha+digits < free text
const (
	tierEmpty = iota
	tierNumeric
	tierAlphaNumeric
	tierText
)

type sortKey struct {
	tier  int
	alpha string
	num   int64
	text  string
}

func keyOf(name string) sortKey {
	if name == "" {
		return sortKey{tier: tierEmpty}
	}

	split := 0
	for _, r := range name {
		if !unicode.IsLetter(r) {
			break
		}
		split += utf8.RuneLen(r)
	}
	alpha, digits := name[:split], name[split:]

	if digits == "" || !allDigits(digits) {
		return sortKey{tier: tierText, text: name}
	}

	num, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return sortKey{tier: tierText, text: name}
	}

	if alpha == "" {
		return sortKey{tier: tierNumeric, num: num}
	}

	// left-pad the alpha prefix so "A1" orders before "AA1"
	for len(alpha) < 2 {
		alpha = " " + alpha
	}
	return sortKey{tier: tierAlphaNumeric, alpha: alpha, num: num}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (k sortKey) less(other sortKey) bool {
	if k.tier != other.tier {
		return k.tier < other.tier
	}
	if k.alpha != other.alpha {
		return k.alpha < other.alpha
	}
	if k.num != other.num {
		return k.num < other.num
	}
	return k.text < other.text
}

// Less compares two color names in natural ascending order
func Less(a, b string) bool {
	return keyOf(a).less(keyOf(b))
}

// SortColorNames sorts names in place; descending when desc is true
func SortColorNames(names []string, desc bool) {
	sort.SliceStable(names, func(i, j int) bool {
		if desc {
			return Less(names[j], names[i])
		}
		return Less(names[i], names[j])
	})
}

// SortBy sorts an arbitrary slice by a color-name accessor
func SortBy[T any](items []T, nameOf func(T) string, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return Less(nameOf(items[j]), nameOf(items[i]))
		}
		return Less(nameOf(items[i]), nameOf(items[j]))
	})
}
