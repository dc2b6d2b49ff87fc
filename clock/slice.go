// Package clock turns wall-clock time into a composed pixel clock face:
// it slices a timestamp into font symbols, lays them out with spacing and
// optional centering, and paces once-per-second updates.
package clock

import "time"

// Slice breaks a time into the symbol sequence to render: two hour digits,
// a colon, two minute digits, optionally a colon and two second digits,
// and in 12-hour mode a space plus the AM/PM letters.
func Slice(now time.Time, showSeconds, military bool) []rune {
	hour := now.Hour()
	suffix := 'A'
	if hour >= 12 {
		suffix = 'P'
	}
	if !military {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}

	symbols := make([]rune, 0, 11)
	symbols = append(symbols,
		digitRune(hour/10), digitRune(hour%10),
		':',
		digitRune(now.Minute()/10), digitRune(now.Minute()%10),
	)

	if showSeconds {
		symbols = append(symbols, ':', digitRune(now.Second()/10), digitRune(now.Second()%10))
	}

	if !military {
		symbols = append(symbols, ' ', suffix, 'M')
	}

	return symbols
}

func digitRune(d int) rune {
	return '0' + rune(d)
}
