package reporting

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

// Accepted header aliases per identity field, resolved by first match.
// A header matching any alias is an identity column and never a date column.
var (
	firstNameAliases = []string{"first name", "first name (legal)", "firstname", "first"}
	lastNameAliases  = []string{"last name", "last name (legal)", "lastname", "last", "surname"}
	statusAliases    = []string{"status", "employment status"}

	businessLineAliases = []string{"business line", "businessline", "business unit", "team", "department"}
	profileLinkAliases  = []string{"profile link", "profile url", "linkedin", "linkedin url", "link"}
)

var identityAliasSets = [][]string{
	firstNameAliases,
	lastNameAliases,
	statusAliases,
	businessLineAliases,
	profileLinkAliases,
}

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var monthsByAbbreviation = map[string]time.Month{
	"jan":  time.January,
	"feb":  time.February,
	"mar":  time.March,
	"apr":  time.April,
	"jun":  time.June,
	"jul":  time.July,
	"aug":  time.August,
	"sep":  time.September,
	"sept": time.September,
	"oct":  time.October,
	"nov":  time.November,
	"dec":  time.December,
}

var (
	ordinalRe   = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	parenRe     = regexp.MustCompile(`\(([^)]*)\)`)
	yearRe      = regexp.MustCompile(`\b(20\d{2})\b`)
	dayRe       = regexp.MustCompile(`\b(\d{1,2})\b`)
	monthWordRe = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\b`)
)

// Layouts tried by the freeform mode's last-resort parse.
var genericLayouts = []string{
	time.DateOnly,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2006",
	"January 2006",
	"01/2006",
}

// ClassifiedHeaders partitions a header row into identity columns and the
// ordered set of date columns.
type ClassifiedHeaders struct {
	FirstName    string
	LastName     string
	Status       string
	BusinessLine string
	ProfileLink  string
	DateColumns  []domain.DateColumn
}

// ClassifyHeaders resolves identity columns by alias and the remaining
// headers into date columns. Headers that resolve to no date are dropped:
// their values stay invisible downstream instead of failing the request.
// Duplicate resolved dates keep the last header in order.
func ClassifyHeaders(headers []string, report config.Report) ClassifiedHeaders {
	classified := ClassifiedHeaders{
		FirstName:    resolveAlias(headers, firstNameAliases),
		LastName:     resolveAlias(headers, lastNameAliases),
		Status:       resolveAlias(headers, statusAliases),
		BusinessLine: resolveAlias(headers, businessLineAliases),
		ProfileLink:  resolveAlias(headers, profileLinkAliases),
	}

	fallbackYear := defaultSeriesYear(headers)

	byDate := make(map[string]domain.DateColumn)
	for _, header := range headers {
		if isIdentityHeader(header) {
			continue
		}

		var date time.Time
		var ok bool
		if report.HeaderMode == config.HeaderModeMonthName {
			date, ok = resolveMonthNameHeader(header, report.DefaultYear)
		} else {
			date, ok = resolveFreeformHeader(header, fallbackYear)
		}
		if !ok {
			continue
		}

		day := date.Format(time.DateOnly)
		byDate[day] = domain.DateColumn{Header: header, Date: day}
	}

	classified.DateColumns = make([]domain.DateColumn, 0, len(byDate))
	for _, column := range byDate {
		classified.DateColumns = append(classified.DateColumns, column)
	}
	// ISO day strings sort chronologically.
	sort.Slice(classified.DateColumns, func(i, j int) bool {
		return classified.DateColumns[i].Date < classified.DateColumns[j].Date
	})

	return classified
}

// resolveAlias walks the alias list in order and returns the first header
// matching one, so preferred label variants win over looser ones.
func resolveAlias(headers []string, aliases []string) string {
	for _, alias := range aliases {
		for _, header := range headers {
			if strings.EqualFold(strings.TrimSpace(header), alias) {
				return header
			}
		}
	}
	return ""
}

func isIdentityHeader(header string) bool {
	trimmed := strings.TrimSpace(header)
	for _, aliases := range identityAliasSets {
		for _, alias := range aliases {
			if strings.EqualFold(trimmed, alias) {
				return true
			}
		}
	}
	return false
}

// defaultSeriesYear is the first 20xx number found anywhere in the headers,
// falling back to the current calendar year.
func defaultSeriesYear(headers []string) int {
	for _, header := range headers {
		if match := yearRe.FindString(header); match != "" {
			year, _ := strconv.Atoi(match)
			return year
		}
	}
	return time.Now().Year()
}

// resolveMonthNameHeader accepts only headers that are exactly a month name,
// resolving to the first day of that month in the default year. Headers with
// any suffix ("March (18th)") are dropped in this mode.
func resolveMonthNameHeader(header string, defaultYear int) (time.Time, bool) {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(header))]
	if !ok {
		return time.Time{}, false
	}
	return time.Date(defaultYear, month, 1, 0, 0, 0, 0, time.UTC), true
}

// resolveFreeformHeader tries, in order: numeric M/D/Y, numeric Y-M-D, a
// month name anywhere in the header (preferring parenthesized text, which
// often carries the true date alias) combined with the first bare 1-2 digit
// number as day and the first 20xx number as year, and finally a fixed set
// of date layouts.
func resolveFreeformHeader(header string, fallbackYear int) (time.Time, bool) {
	cleaned := ordinalRe.ReplaceAllString(header, "$1")

	if m := slashDateRe.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if date, ok := makeDate(year, month, day); ok {
			return date, true
		}
	}

	if m := isoDateRe.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if date, ok := makeDate(year, month, day); ok {
			return date, true
		}
	}

	if month, fragment, ok := findMonthWord(cleaned); ok {
		day := findDay(fragment)
		if day == 0 && fragment != cleaned {
			day = findDay(cleaned)
		}
		if day == 0 {
			day = 1
		}

		year := fallbackYear
		if m := yearRe.FindString(fragment); m != "" {
			year, _ = strconv.Atoi(m)
		} else if m := yearRe.FindString(cleaned); m != "" {
			year, _ = strconv.Atoi(m)
		}

		if date, ok := makeDate(year, int(month), day); ok {
			return date, true
		}
	}

	trimmed := strings.TrimSpace(cleaned)
	for _, layout := range genericLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date.UTC(), true
		}
	}

	return time.Time{}, false
}

// findMonthWord looks for a month name, scanning parenthesized fragments
// before the header as a whole. Many headers carry a parenthetical "true"
// date alias, so the day and year are searched in the matching fragment
// first.
func findMonthWord(header string) (time.Month, string, bool) {
	for _, paren := range parenRe.FindAllStringSubmatch(header, -1) {
		if match := monthWordRe.FindString(paren[1]); match != "" {
			return monthFromWord(match), paren[1], true
		}
	}

	if match := monthWordRe.FindString(header); match != "" {
		return monthFromWord(match), header, true
	}

	return 0, "", false
}

// findDay returns the first bare 1-2 digit number usable as a day, or 0.
func findDay(fragment string) int {
	if m := dayRe.FindString(fragment); m != "" {
		if day, err := strconv.Atoi(m); err == nil && day >= 1 && day <= 31 {
			return day
		}
	}
	return 0
}

func monthFromWord(word string) time.Month {
	lowered := strings.ToLower(word)
	if month, ok := monthsByName[lowered]; ok {
		return month
	}
	return monthsByAbbreviation[lowered]
}

// makeDate rejects out-of-range components ("2/31/2025" must not roll over
// into March).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
