// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asinine

// Time holds the normalised components of a decoded ASN.1 UTCTime or
// GeneralizedTime value. Years are always stored as full four-digit values,
// regardless of which wire format produced them (spec.md §3, §4.3).
type Time struct {
	Year   int // full four-digit year
	Month  int // 1..12
	Day    int // 1..31
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
}

// Compare orders two Time values field-wise from year to second, as required
// by spec.md §3. It returns a negative number if t sorts before other, a
// positive number if it sorts after, and 0 if they denote the same instant.
func (t Time) Compare(other Time) int {
	for _, pair := range [...][2]int{
		{t.Year, other.Year},
		{t.Month, other.Month},
		{t.Day, other.Day},
		{t.Hour, other.Hour},
		{t.Minute, other.Minute},
		{t.Second, other.Second},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// IsLeapYearFull applies the full Gregorian leap-year rule (divisible by 4,
// not by 100, except divisible by 400), used when validating GeneralizedTime
// values, which carry a full four-digit year on the wire.
func IsLeapYearFull(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapYearTwoDigit applies the simplified leap-year rule used for UTCTime.
// UTCTime years are always mapped into the ranges 1950..1999 or 2000..2049
// (spec.md §4.3), so checking divisibility by 4 alone is sufficient: none of
// those years are century years other than 2000, which is itself a leap year
// under the full rule too.
func IsLeapYearTwoDigit(year int) bool {
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given month of year, using
// leapYear to decide February's length.
func DaysInMonth(month, year int, leapYear func(int) bool) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if leapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
