// Package value validates and converts the raw string values of keyword
// tokens into typed values. Invalid values are reported as absent, never as
// errors: the caller skips the affected filter.
package value

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Calendar dates are YYYY-M-D with a 4-digit year starting in 1 or 2.
	dateRE   = regexp.MustCompile(`^([12][0-9]{3})-(0?[1-9]|1[0-2])-(0?[1-9]|[12][0-9]|3[01])$`)
	digitsRE = regexp.MustCompile(`^[0-9]+$`)
)

// LastDate interprets the last supplied value as either a calendar date at
// local midnight or, if purely digits, as "N days ago" counted from the
// start of today (0 = today). Earlier values are superseded.
func LastDate(values []string, now time.Time) (time.Time, bool) {
	if len(values) == 0 {
		return time.Time{}, false
	}
	v := values[len(values)-1]

	if m := dateRE.FindStringSubmatch(v); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
	}

	if digitsRE.MatchString(v) {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return time.Time{}, false
		}
		y, m, d := now.Date()
		startOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		return startOfToday.AddDate(0, 0, -days), true
	}

	return time.Time{}, false
}

// LastCount interprets the last supplied value as an unsigned integer
// literal. Earlier values are superseded.
func LastCount(values []string) (int64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	v := values[len(values)-1]
	if !digitsRE.MatchString(v) {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SplitFlat splits every value on "," and flattens the result, preserving
// order.
func SplitFlat(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

// Usernames splits every value on "," and strips one leading "@" from each
// item.
func Usernames(values []string) []string {
	var out []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			out = append(out, strings.TrimPrefix(name, "@"))
		}
	}
	return out
}
