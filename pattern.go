package chartsdk

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternToken is one run of a date pattern. Literal runs come from quoted
// sections or whitespace; every other run is a token candidate and is written
// out verbatim when it isn't a known token.
type patternToken struct {
	literal bool
	val     string
}

const patternCacheSize = 512

var patternCache = mustPatternCache(patternCacheSize)

func mustPatternCache(size int) *lru.Cache[string, []patternToken] {
	cache, err := lru.New[string, []patternToken](size)
	if err != nil {
		panic(fmt.Sprintf("chartsdk: pattern cache: %v", err))
	}
	return cache
}

// compilePattern splits a pattern into tokens, memoized per pattern string.
func compilePattern(pattern string) []patternToken {
	if tokens, ok := patternCache.Get(pattern); ok {
		return tokens
	}
	tokens := tokenizePattern(pattern)
	patternCache.Add(pattern, tokens)
	return tokens
}

// tokenizePattern groups runs of the same character. A single quote toggles
// literal mode and '' outside a quoted section yields a literal quote.
func tokenizePattern(pattern string) []patternToken {
	var (
		tokens    []patternToken
		current   rune
		full      strings.Builder
		bracketed bool
	)

	flush := func(literal bool) {
		if full.Len() == 0 {
			return
		}
		val := full.String()
		tokens = append(tokens, patternToken{literal: literal || isBlank(val), val: val})
		full.Reset()
	}

	for _, c := range pattern {
		switch {
		case c == '\'':
			if full.Len() > 0 || bracketed {
				if full.Len() == 0 {
					tokens = append(tokens, patternToken{literal: true, val: "'"})
				} else {
					flush(bracketed)
				}
			}
			current = 0
			bracketed = !bracketed
		case bracketed:
			full.WriteRune(c)
		case c == current:
			full.WriteRune(c)
		default:
			flush(false)
			full.WriteRune(c)
			current = c
		}
	}
	flush(bracketed)

	return tokens
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// renderPattern formats the instant with the pattern using the locale bundle
// for names and macro tokens.
func renderPattern(in instant, pattern string, bundle localeBundle) string {
	var b strings.Builder
	for _, token := range compilePattern(pattern) {
		if token.literal {
			b.WriteString(token.val)
			continue
		}
		b.WriteString(renderToken(in, token.val, bundle))
	}
	return b.String()
}

func renderToken(in instant, token string, bundle localeBundle) string {
	t := in.t
	switch token {
	// milliseconds
	case "S":
		return strconv.Itoa(in.millisecond())
	case "u", "SSS":
		return pad(in.millisecond(), 3)
	case "uu":
		return pad(in.millisecond()/10, 2)
	case "uuu":
		return strconv.Itoa(in.millisecond() / 100)
	// seconds, minutes, hours
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "hh":
		return pad(hour12(t.Hour()), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	// offsets and zones
	case "Z":
		return formatOffset(t, offsetNarrow)
	case "ZZ":
		return formatOffset(t, offsetShort)
	case "ZZZ":
		return formatOffset(t, offsetTechie)
	case "ZZZZ", "ZZZZZ":
		name, _ := t.Zone()
		return name
	case "z":
		return t.Location().String()
	case "a":
		if t.Hour() < 12 {
			return bundle.meridiem[0]
		}
		return bundle.meridiem[1]
	// days
	case "d":
		return strconv.Itoa(t.Day())
	case "dd":
		return pad(t.Day(), 2)
	case "c", "E":
		return strconv.Itoa(in.weekday())
	case "ccc", "EEE":
		return bundle.weekdaysShort[in.weekday()-1]
	case "cccc", "EEEE":
		return bundle.weekdays[in.weekday()-1]
	case "ccccc", "EEEEE":
		return firstRune(bundle.weekdays[in.weekday()-1])
	// months
	case "L", "M":
		return strconv.Itoa(int(t.Month()))
	case "LL", "MM":
		return pad(int(t.Month()), 2)
	case "LLL", "MMM":
		return bundle.monthsShort[t.Month()-1]
	case "LLLL", "MMMM":
		return bundle.months[t.Month()-1]
	case "LLLLL", "MMMMM":
		return firstRune(bundle.months[t.Month()-1])
	// years use the fiscal year when a start month is set on the instant
	case "y":
		return strconv.Itoa(in.fiscalYear())
	case "yy":
		return pad(twoDigitYear(in.fiscalYear()), 2)
	case "yyyy":
		return pad(in.fiscalYear(), 4)
	case "yyyyyy":
		return pad(in.fiscalYear(), 6)
	case "G":
		return era(t.Year(), "AD", "BC")
	case "GG":
		return era(t.Year(), "Anno Domini", "Before Christ")
	case "GGGGG":
		return era(t.Year(), "A", "B")
	// ISO weeks
	case "kk":
		year, _ := t.ISOWeek()
		return pad(twoDigitYear(year), 2)
	case "kkkk":
		year, _ := t.ISOWeek()
		return pad(year, 4)
	case "W":
		_, week := t.ISOWeek()
		return strconv.Itoa(week)
	case "WW":
		_, week := t.ISOWeek()
		return pad(week, 2)
	// ordinal day and quarters
	case "o":
		return strconv.Itoa(t.YearDay())
	case "ooo":
		return pad(t.YearDay(), 3)
	case "q":
		return strconv.Itoa(in.fiscalQuarter())
	case "qq":
		return pad(in.fiscalQuarter(), 2)
	// unix timestamps
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}

	if style, ok := macroTokens[token]; ok {
		return renderPattern(in, bundle.nativePattern(style), bundle)
	}
	return token
}

// macroTokens expand to the locale's native pattern for that style.
var macroTokens = map[string]nativeStyle{
	"D":    nativeDateShort,
	"DD":   nativeDateMed,
	"DDD":  nativeDateFull,
	"DDDD": nativeDateHuge,
	"t":    nativeTimeSimple,
	"tt":   nativeTimeWithSeconds,
	"T":    nativeTime24Simple,
	"TT":   nativeTime24WithSeconds,
	"f":    nativeDateTimeShort,
	"ff":   nativeDateTimeMed,
	"F":    nativeDateTimeShortWithSeconds,
	"FF":   nativeDateTimeMedWithSeconds,
}

func pad(value, width int) string {
	if value < 0 {
		return "-" + pad(-value, width)
	}
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func hour12(hour int) int {
	if hour%12 == 0 {
		return 12
	}
	return hour % 12
}

func twoDigitYear(year int) int {
	if year < 0 {
		year = -year
	}
	return year % 100
}

func era(year int, ad, bc string) string {
	if year > 0 {
		return ad
	}
	return bc
}

func firstRune(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
