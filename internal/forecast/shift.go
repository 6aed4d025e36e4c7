package forecast

import "time"

// The date picker only accepts days inside one fixed calendar year, while
// the predictor works on days one year earlier. The picker therefore shows
// every stored date one year ahead and maps picks back by one year.
// The pair below is exact inverses for every date, leap days included.

// ToDisplayDate returns the date the picker and the result modal show for
// a stored date.
func ToDisplayDate(stored Date) Date {
	return shiftYears(stored, 1)
}

// ToStoredDate returns the stored date for a day picked in the picker.
func ToStoredDate(displayed Date) Date {
	return shiftYears(displayed, -1)
}

func shiftYears(d Date, n int) Date {
	if d.IsZero() {
		return d
	}
	year := d.Year + n
	leapDay := d.pinned || (d.Month == time.February && d.Day == 29)
	if !leapDay {
		return Date{Year: year, Month: d.Month, Day: d.Day}
	}
	if IsLeap(year) {
		return Date{Year: year, Month: time.February, Day: 29}
	}
	return Date{Year: year, Month: time.February, Day: 28, pinned: true}
}
