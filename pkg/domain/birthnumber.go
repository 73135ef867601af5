// Package domain holds the birth number value object and the calendar
// arithmetic derived from it. Everything here is pure; callers supply the
// reference time.
package domain

import (
	"fmt"
	"regexp"
	"strconv"

	dErrors "user-registry/pkg/domain-errors"
)

// Birth numbers encode YYMMDD plus a four digit sequence, with the month
// component offset by 50 for one sex-encoding convention. The separator is
// optional on input; the canonical stored form always carries it.
var birthNumberPattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})/?(\d{4})$`)

// BirthNumber is a validated national birth number.
// The zero value is not valid; construct via ParseBirthNumber.
type BirthNumber struct {
	year2    int
	rawMonth int
	day      int
	sequence string
}

// ParseBirthNumber validates the raw identifier format and its embedded
// calendar date. The only failure mode is a domain error carrying
// CodeInvalidBirthNumber.
func ParseBirthNumber(raw string) (BirthNumber, error) {
	m := birthNumberPattern.FindStringSubmatch(raw)
	if m == nil {
		return BirthNumber{}, errInvalidBirthNumber()
	}

	year2, _ := strconv.Atoi(m[1])
	rawMonth, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	month := correctMonth(rawMonth)
	if month < 1 || month > 12 {
		return BirthNumber{}, errInvalidBirthNumber()
	}
	if day < 1 || day > maxDayInMonth(year2, month) {
		return BirthNumber{}, errInvalidBirthNumber()
	}

	return BirthNumber{
		year2:    year2,
		rawMonth: rawMonth,
		day:      day,
		sequence: m[4],
	}, nil
}

// Year2 returns the two-digit year of century.
func (b BirthNumber) Year2() int { return b.year2 }

// Month returns the calendar month with the sex-encoding offset removed.
func (b BirthNumber) Month() int { return correctMonth(b.rawMonth) }

// Day returns the day of month.
func (b BirthNumber) Day() int { return b.day }

// Sequence returns the four digit distinguishing suffix.
func (b BirthNumber) Sequence() string { return b.sequence }

// Canonical renders the stored form YYMMDD/XXXX, keeping the raw (possibly
// offset) month digits. Re-parsing the canonical form always succeeds.
func (b BirthNumber) Canonical() string {
	return fmt.Sprintf("%02d%02d%02d/%s", b.year2, b.rawMonth, b.day, b.sequence)
}

func correctMonth(rawMonth int) int {
	if rawMonth > 50 {
		return rawMonth - 50
	}
	return rawMonth
}

// maxDayInMonth applies the Gregorian leap rule to the two-digit year as-is.
// The reference behavior never resolves the century here, so e.g. year2=00
// counts as divisible by 400. Kept intentionally; see the century note on Age.
func maxDayInMonth(year2, month int) int {
	switch month {
	case 2:
		if (year2%4 == 0 && year2%100 != 0) || year2%400 == 0 {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func errInvalidBirthNumber() error {
	return dErrors.New(dErrors.CodeInvalidBirthNumber, "The Birth Number is invalid.")
}
