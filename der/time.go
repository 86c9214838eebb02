// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// DecodeUTCTime decodes t as an ASN.1 UTCTime (tag 23). The content must be
// exactly the 13 ASCII characters `YYMMDDHHMMSSZ`; any other length, a
// non-digit in a digit position, or a trailing character other than 'Z' is
// [asinine.Malformed]. The two-digit year is mapped to a full year by
// `YY >= 50 -> 1900+YY`, else `2000+YY` (spec.md §4.3).
func DecodeUTCTime(t Token) (asinine.Time, *asinine.Error) {
	const layout = 13
	if len(t.Data) != layout {
		return asinine.Time{}, errorf(asinine.Malformed, 0, "UTCTime content must be 13 characters")
	}
	if t.Data[layout-1] != 'Z' {
		return asinine.Time{}, errorf(asinine.Malformed, 0, "UTCTime must end in 'Z'")
	}

	var fields [6]int
	for i, width := range [...]int{2, 2, 2, 2, 2, 2} {
		v, ok := decodeDigits(t.Data[i*2 : i*2+width])
		if !ok {
			return asinine.Time{}, errorf(asinine.Malformed, i*2, "UTCTime contains a non-digit")
		}
		fields[i] = v
	}

	year := fields[0]
	if year >= 50 {
		year += 1900
	} else {
		year += 2000
	}

	tm := asinine.Time{Year: year, Month: fields[1], Day: fields[2], Hour: fields[3], Minute: fields[4], Second: fields[5]}
	if err := validateTime(tm, asinine.IsLeapYearTwoDigit); err != nil {
		return asinine.Time{}, err
	}
	return tm, nil
}

// DecodeGeneralizedTime decodes t as an ASN.1 GeneralizedTime (tag 24). The
// content must be exactly the 15 ASCII characters `YYYYMMDDHHMMSSZ`, using
// the full Gregorian leap-year rule for field validation (spec.md §4.3).
func DecodeGeneralizedTime(t Token) (asinine.Time, *asinine.Error) {
	const layout = 15
	if len(t.Data) != layout {
		return asinine.Time{}, errorf(asinine.Malformed, 0, "GeneralizedTime content must be 15 characters")
	}
	if t.Data[layout-1] != 'Z' {
		return asinine.Time{}, errorf(asinine.Malformed, 0, "GeneralizedTime must end in 'Z'")
	}

	year, ok := decodeDigits(t.Data[0:4])
	if !ok {
		return asinine.Time{}, errorf(asinine.Malformed, 0, "GeneralizedTime contains a non-digit")
	}
	var fields [5]int
	for i, width := range [...]int{2, 2, 2, 2, 2} {
		off := 4 + i*2
		v, ok := decodeDigits(t.Data[off : off+width])
		if !ok {
			return asinine.Time{}, errorf(asinine.Malformed, off, "GeneralizedTime contains a non-digit")
		}
		fields[i] = v
	}

	tm := asinine.Time{Year: year, Month: fields[0], Day: fields[1], Hour: fields[2], Minute: fields[3], Second: fields[4]}
	if err := validateTime(tm, asinine.IsLeapYearFull); err != nil {
		return asinine.Time{}, err
	}
	return tm, nil
}

// validateTime checks field ranges common to both wire formats. Hour 24 is
// always malformed, even as a midnight convention (spec.md §8 scenario 6).
func validateTime(tm asinine.Time, leapYear func(int) bool) *asinine.Error {
	if tm.Month < 1 || tm.Month > 12 {
		return errorf(asinine.Malformed, 0, "month out of range")
	}
	if tm.Hour < 0 || tm.Hour > 23 {
		return errorf(asinine.Malformed, 0, "hour out of range")
	}
	if tm.Minute < 0 || tm.Minute > 59 {
		return errorf(asinine.Malformed, 0, "minute out of range")
	}
	if tm.Second < 0 || tm.Second > 59 {
		return errorf(asinine.Malformed, 0, "second out of range")
	}
	max := asinine.DaysInMonth(tm.Month, tm.Year, leapYear)
	if tm.Day < 1 || tm.Day > max {
		return errorf(asinine.Malformed, 0, "day out of range for month")
	}
	return nil
}

// decodeDigits parses s as an unsigned decimal number, reporting false if any
// byte is not an ASCII digit.
func decodeDigits(s []byte) (int, bool) {
	v := 0
	for _, b := range s {
		if b < '0' || b > '9' {
			return 0, false
		}
		v = v*10 + int(b-'0')
	}
	return v, true
}
