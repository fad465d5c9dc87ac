// Package token splits a raw topic-filter query string into keyword tokens
// and a residual sequence of free-text words.
package token

import (
	"regexp"
	"strings"
)

// Prefix modifies how a keyword token's filter is applied.
type Prefix uint8

const (
	// None applies the filter as an inclusion.
	None Prefix = iota
	// Exclude ("-") inverts the filter.
	Exclude
	// Strict ("=") disables subcategory expansion.
	Strict
	// ExcludeStrict ("-=" or "=-") combines Exclude and Strict.
	ExcludeStrict
)

// Excludes reports whether the prefix carries an exclusion marker.
func (p Prefix) Excludes() bool { return p == Exclude || p == ExcludeStrict }

// IsStrict reports whether the prefix carries a strictness marker.
func (p Prefix) IsStrict() bool { return p == Strict || p == ExcludeStrict }

func (p Prefix) String() string {
	switch p {
	case Exclude:
		return "-"
	case Strict:
		return "="
	case ExcludeStrict:
		return "-="
	default:
		return ""
	}
}

// Value is one (prefix, raw value) pair supplied for a key.
type Value struct {
	Prefix Prefix
	Raw    string
}

// Group collects every token sharing one canonical key, in first-to-last
// appearance order.
type Group struct {
	Key    string
	Values []Value
}

// Query is the tokenized form of a raw query string.
type Query struct {
	// Groups holds keyword tokens grouped by canonical key, ordered by the
	// key's first appearance.
	Groups []Group
	// Words is the residual free text: whitespace-split words that are not
	// part of any keyword token.
	Words []string
}

// A keyword token is <prefix>?<key>:<value>. The two-character prefixes must
// come first in the alternation so they are not shadowed by "-" and "=".
var keywordRE = regexp.MustCompile(`(-=|=-|-|=)?([\w-]+):(\S+)`)

var keyAliases = map[string]string{
	"categories": "category",
	"tags":       "tag",
}

// Tokenize scans the raw query string. It never fails: anything that does
// not match the keyword pattern becomes free text.
func Tokenize(query string) Query {
	var q Query

	index := make(map[string]int)
	for _, m := range keywordRE.FindAllStringSubmatch(query, -1) {
		key := m[2]
		if alias, ok := keyAliases[key]; ok {
			key = alias
		}

		i, ok := index[key]
		if !ok {
			i = len(q.Groups)
			index[key] = i
			q.Groups = append(q.Groups, Group{Key: key})
		}
		q.Groups[i].Values = append(q.Groups[i].Values, Value{
			Prefix: parsePrefix(m[1]),
			Raw:    m[3],
		})
	}

	for _, word := range strings.Fields(query) {
		if strings.Contains(word, ":") {
			continue
		}
		q.Words = append(q.Words, word)
	}

	return q
}

func parsePrefix(s string) Prefix {
	switch s {
	case "-":
		return Exclude
	case "=":
		return Strict
	case "-=", "=-":
		return ExcludeStrict
	default:
		return None
	}
}
