package chartsdk

import (
	"golang.org/x/text/language"
)

// nativeStyle identifies a locale rendered style that has no literal pattern
// in the host tables (the calendar library's own presets).
type nativeStyle string

const (
	nativeDateShort                nativeStyle = "D"
	nativeDateMed                  nativeStyle = "DD"
	nativeDateFull                 nativeStyle = "DDD"
	nativeDateHuge                 nativeStyle = "DDDD"
	nativeTimeSimple               nativeStyle = "t"
	nativeTimeWithSeconds          nativeStyle = "tt"
	nativeTime24Simple             nativeStyle = "T"
	nativeTime24WithSeconds        nativeStyle = "TT"
	nativeDateTimeShort            nativeStyle = "f"
	nativeDateTimeMed              nativeStyle = "ff"
	nativeDateTimeShortWithSeconds nativeStyle = "F"
	nativeDateTimeMedWithSeconds   nativeStyle = "FF"
)

// localeBundle holds the names and native patterns for one language. Native
// patterns are written in the same token language as host patterns.
type localeBundle struct {
	months        [12]string
	monthsShort   [12]string
	weekdays      [7]string // Monday first
	weekdaysShort [7]string
	meridiem      [2]string
	patterns      map[nativeStyle]string
}

var englishNames = localeBundle{
	months:        months,
	monthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	weekdays:      [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	weekdaysShort: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	meridiem:      [2]string{"AM", "PM"},
}

func withPatterns(names localeBundle, patterns map[nativeStyle]string) localeBundle {
	names.patterns = patterns
	return names
}

var nativeBundles = map[language.Tag]localeBundle{
	language.AmericanEnglish: withPatterns(englishNames, map[nativeStyle]string{
		nativeDateShort:                "M/d/yyyy",
		nativeDateMed:                  "MMM d, yyyy",
		nativeDateFull:                 "MMMM d, yyyy",
		nativeDateHuge:                 "EEEE, MMMM d, yyyy",
		nativeTimeSimple:               "h:mm a",
		nativeTimeWithSeconds:          "h:mm:ss a",
		nativeTime24Simple:             "HH:mm",
		nativeTime24WithSeconds:        "HH:mm:ss",
		nativeDateTimeShort:            "M/d/yyyy, h:mm a",
		nativeDateTimeMed:              "MMM d, yyyy, h:mm a",
		nativeDateTimeShortWithSeconds: "M/d/yyyy, h:mm:ss a",
		nativeDateTimeMedWithSeconds:   "MMM d, yyyy, h:mm:ss a",
	}),
	language.BritishEnglish: withPatterns(englishNames, map[nativeStyle]string{
		nativeDateShort:                "dd/MM/yyyy",
		nativeDateMed:                  "d MMM yyyy",
		nativeDateFull:                 "d MMMM yyyy",
		nativeDateHuge:                 "EEEE d MMMM yyyy",
		nativeTimeSimple:               "HH:mm",
		nativeTimeWithSeconds:          "HH:mm:ss",
		nativeTime24Simple:             "HH:mm",
		nativeTime24WithSeconds:        "HH:mm:ss",
		nativeDateTimeShort:            "dd/MM/yyyy, HH:mm",
		nativeDateTimeMed:              "d MMM yyyy, HH:mm",
		nativeDateTimeShortWithSeconds: "dd/MM/yyyy, HH:mm:ss",
		nativeDateTimeMedWithSeconds:   "d MMM yyyy, HH:mm:ss",
	}),
	language.German: {
		months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsShort:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		weekdays:      [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
		weekdaysShort: [7]string{"Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa.", "So."},
		meridiem:      [2]string{"AM", "PM"},
		patterns: map[nativeStyle]string{
			nativeDateShort:                "d.M.yyyy",
			nativeDateMed:                  "d. MMM yyyy",
			nativeDateFull:                 "d. MMMM yyyy",
			nativeDateHuge:                 "EEEE, d. MMMM yyyy",
			nativeTimeSimple:               "HH:mm",
			nativeTimeWithSeconds:          "HH:mm:ss",
			nativeTime24Simple:             "HH:mm",
			nativeTime24WithSeconds:        "HH:mm:ss",
			nativeDateTimeShort:            "d.M.yyyy, HH:mm",
			nativeDateTimeMed:              "d. MMM yyyy, HH:mm",
			nativeDateTimeShortWithSeconds: "d.M.yyyy, HH:mm:ss",
			nativeDateTimeMedWithSeconds:   "d. MMM yyyy, HH:mm:ss",
		},
	},
	language.Spanish: {
		months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsShort:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays:      [7]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"},
		weekdaysShort: [7]string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
		meridiem:      [2]string{"a. m.", "p. m."},
		patterns: map[nativeStyle]string{
			nativeDateShort:                "d/M/yyyy",
			nativeDateMed:                  "d MMM yyyy",
			nativeDateFull:                 "d 'de' MMMM 'de' yyyy",
			nativeDateHuge:                 "EEEE, d 'de' MMMM 'de' yyyy",
			nativeTimeSimple:               "H:mm",
			nativeTimeWithSeconds:          "H:mm:ss",
			nativeTime24Simple:             "H:mm",
			nativeTime24WithSeconds:        "H:mm:ss",
			nativeDateTimeShort:            "d/M/yyyy, H:mm",
			nativeDateTimeMed:              "d MMM yyyy, H:mm",
			nativeDateTimeShortWithSeconds: "d/M/yyyy, H:mm:ss",
			nativeDateTimeMedWithSeconds:   "d MMM yyyy, H:mm:ss",
		},
	},
	language.French: {
		months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsShort:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:      [7]string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
		weekdaysShort: [7]string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
		meridiem:      [2]string{"AM", "PM"},
		patterns: map[nativeStyle]string{
			nativeDateShort:                "dd/MM/yyyy",
			nativeDateMed:                  "d MMM yyyy",
			nativeDateFull:                 "d MMMM yyyy",
			nativeDateHuge:                 "EEEE d MMMM yyyy",
			nativeTimeSimple:               "HH:mm",
			nativeTimeWithSeconds:          "HH:mm:ss",
			nativeTime24Simple:             "HH:mm",
			nativeTime24WithSeconds:        "HH:mm:ss",
			nativeDateTimeShort:            "dd/MM/yyyy HH:mm",
			nativeDateTimeMed:              "d MMM yyyy, HH:mm",
			nativeDateTimeShortWithSeconds: "dd/MM/yyyy HH:mm:ss",
			nativeDateTimeMedWithSeconds:   "d MMM yyyy, HH:mm:ss",
		},
	},
}

// nativeTags is ordered so the matcher prefers American English on ties.
var nativeTags = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.Spanish,
	language.French,
}

var nativeMatcher = language.NewMatcher(nativeTags)

// bundleFor picks the closest native bundle for the tag, falling back to
// American English when nothing matches with reasonable confidence.
func bundleFor(tag language.Tag) localeBundle {
	_, index, confidence := nativeMatcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(nativeTags) {
		return nativeBundles[language.AmericanEnglish]
	}
	return nativeBundles[nativeTags[index]]
}

// nativePattern returns the locale pattern for a native style. The default
// style (empty format) is the short date.
func (b localeBundle) nativePattern(style nativeStyle) string {
	if style == "" {
		style = nativeDateShort
	}
	if pattern, ok := b.patterns[style]; ok {
		return pattern
	}
	return nativeBundles[language.AmericanEnglish].patterns[style]
}
