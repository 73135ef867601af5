package domain

import "time"

// Age derives whole years lived from a validated birth number at the given
// reference time. The anniversary of a February 29 birth counts as
// February 28 in common years, so a leap-day birthday has already occurred
// on Feb 28.
//
// Century resolution is a heuristic: a two-digit year greater than the
// reference year-of-century is assumed to belong to the 1900s, otherwise the
// 2000s. This only distinguishes two centuries and misreports ages of 100 and
// above; a known limitation of the encoding, not corrected here.
func Age(bn BirthNumber, today time.Time) int {
	thisYear2 := today.Year() % 100
	century := 2000
	if bn.Year2() > thisYear2 {
		century = 1900
	}

	birthYear := century + bn.Year2()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	age := todayDate.Year() - birthYear
	if todayDate.Before(anniversaryInYear(bn, todayDate.Year())) {
		age--
	}
	return age
}

// anniversaryInYear places the birthday in the given year, clamping the day
// to the month's length rather than letting Feb 29 roll over to March 1.
func anniversaryInYear(bn BirthNumber, year int) time.Time {
	day := bn.Day()
	if bn.Month() == 2 && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, time.Month(bn.Month()), day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
