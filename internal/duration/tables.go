// tables.go holds the word tables the phrase parser classifies tokens
// against. All tables are keyed by lower-case words, except shorthandUnits
// which is case-sensitive ("m" is minutes, "M" is months).

package duration

import (
	"slices"
	"strings"
)

// Period lengths in milliseconds. Months and years are fixed approximations
// (365 days per year, a twelfth of that per month), not calendar accurate.
const (
	Millisecond float64 = 1
	Second      float64 = 1000
	Minute      float64 = 60 * Second
	Hour        float64 = 60 * Minute
	Day         float64 = 24 * Hour
	Week        float64 = 7 * Day
	Month       float64 = 2628000000
	Quarter     float64 = 3 * Month
	Year        float64 = 31536000000
)

var quantifiers = map[string]float64{
	"half":   0.5,
	"once":   1,
	"each":   1,
	"every":  1,
	"twice":  1.0 / 2,
	"thrice": 1.0 / 3,
}

var cardinals = map[string]float64{
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fourty":    40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
	"hundred":   100,
}

var ordinals = map[string]float64{
	"first":       1,
	"second":      2,
	"third":       3,
	"fourth":      4,
	"fifth":       5,
	"sixth":       6,
	"seventh":     7,
	"eighth":      8,
	"ninth":       9,
	"tenth":       10,
	"eleventh":    11,
	"twelfth":     12,
	"thirteenth":  13,
	"fourteenth":  14,
	"fifteenth":   15,
	"sixteenth":   16,
	"seventeenth": 17,
	"eighteenth":  18,
	"nineteenth":  19,
	"twentieth":   20,
	"thirtieth":   30,
	"fortieth":    40,
	"fourthieth":  40,
	"fiftieth":    50,
	"fifthieth":   50,
	"sixtieth":    60,
	"seventieth":  70,
	"eightieth":   80,
	"ninetieth":   90,
	"hundredth":   100,
	"hundreth":    100,
}

var periods = map[string]float64{
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"second":       Second,
	"seconds":      Second,
	"minute":       Minute,
	"minutes":      Minute,
	"hour":         Hour,
	"hours":        Hour,
	"day":          Day,
	"days":         Day,
	"week":         Week,
	"weeks":        Week,
	"month":        Month,
	"months":       Month,
	"quarter":      Quarter,
	"quarters":     Quarter,
	"year":         Year,
	"years":        Year,

	// Weekdays recur once a week.
	"monday":    Week,
	"tuesday":   Week,
	"wednesday": Week,
	"thursday":  Week,
	"friday":    Week,
	"saturday":  Week,
	"sunday":    Week,

	// Named months and quarters recur once a year.
	"january":   Year,
	"february":  Year,
	"march":     Year,
	"april":     Year,
	"may":       Year,
	"june":      Year,
	"july":      Year,
	"august":    Year,
	"september": Year,
	"october":   Year,
	"november":  Year,
	"december":  Year,
	"q1":        Year,
	"q2":        Year,
	"q3":        Year,
	"q4":        Year,
}

var prepositions = map[string]struct{}{
	"after":      {},
	"afterwards": {},
	"at":         {},
	"before":     {},
	"by":         {},
	"during":     {},
	"from":       {},
	"in":         {},
	"into":       {},
	"on":         {},
	"of":         {},
	"since":      {},
	"through":    {},
	"to":         {},
	"until":      {},
	"within":     {},
}

var shorthandUnits = map[string]float64{
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"M":  Month,
	"y":  Year,
}

// PeriodMillis returns the length of a period word such as "week" or
// "january". The lookup is case-insensitive.
func PeriodMillis(word string) (float64, bool) {
	v, ok := periods[strings.ToLower(word)]
	return v, ok
}

// ShorthandCodes returns the shorthand unit codes in ascending order of size.
func ShorthandCodes() []string {
	return []string{"ms", "s", "m", "h", "d", "w", "M", "y"}
}

// Vocabulary returns every word the phrase parser recognises in sorted
// order.
func Vocabulary() []string {
	seen := map[string]struct{}{"times": {}, "time": {}}
	for _, m := range []map[string]float64{quantifiers, cardinals, ordinals, periods} {
		for w := range m {
			seen[w] = struct{}{}
		}
	}
	for w := range prepositions {
		seen[w] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
