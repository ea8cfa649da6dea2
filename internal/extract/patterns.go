package extract

import (
	"regexp"
	"strconv"
	"strings"

	"docreview/internal/domain"
)

const months = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var (
	// A bare "INV-..." token is the identifier itself; otherwise the
	// identifier follows the keyword and an optional label.
	invoiceNumberRe  = regexp.MustCompile(`(?i)\b(inv-[a-z0-9][a-z0-9-]*)|\b(?:invoice|inv)\b\.?\s*(?:number|no\.?|num|#)?\s*[:#-]?\s*([a-z0-9][a-z0-9-]*)`)
	contractNumberRe = regexp.MustCompile(`(?i)\b(?:contract|agreement)\b\.?\s*(?:number|no\.?|num|id|#)?\s*[:#-]?\s*([a-z0-9][a-z0-9-]*)`)

	// Alternatives share one expression so the leftmost date in the text wins
	// regardless of its shape.
	dateRe = regexp.MustCompile(
		`\b\d{1,2}[/.-]\d{1,2}[/.-](?:\d{4}|\d{2})\b` +
			`|\b\d{4}-\d{1,2}-\d{1,2}\b` +
			`|\b(?:` + months + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b` +
			`|\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + months + `)\.?,?\s+\d{4}\b`)

	// Grouped thousands are tried first so "$1,200," stops before the comma.
	amountRe = regexp.MustCompile(`(?i)(?:\$|\bUSD)\s?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,2}[\s.-]?)?(?:\(\d{3}\)\s?|\b\d{3}[\s.-])\d{3}[\s.-]\d{4}\b`)
	termRe  = regexp.MustCompile(`(?i)\b(\d+)\s*-?\s*(year|month|day)s?\b`)
)

// identifier returns the first identifier captured by re. Ordinary words
// ("Invoice dated ...") and the leading part of a date ("Invoice 01/15/2024")
// are skipped.
func identifier(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := -1, -1
		for g := 1; 2*g+1 < len(m); g++ {
			if m[2*g] >= 0 {
				start, end = m[2*g], m[2*g+1]
				break
			}
		}
		if start < 0 || continuesNumber(text[end:]) {
			continue
		}
		id := strings.Trim(text[start:end], "-")
		if id == "" || isWord(id) || dateRe.FindString(id) == id {
			continue
		}
		return id, true
	}
	return "", false
}

// continuesNumber reports whether rest starts with "/" or "." followed by a
// digit, as in the tail of "01/15/2024" or "12.50".
func continuesNumber(rest string) bool {
	return len(rest) >= 2 && (rest[0] == '/' || rest[0] == '.') && rest[1] >= '0' && rest[1] <= '9'
}

// isWord reports whether id reads as a plain word rather than a code.
// Codes carry a digit or a dash, or are upper-case runs of three or more
// letters that are not vocabulary.
func isWord(id string) bool {
	if strings.ContainsAny(id, "0123456789-") {
		return false
	}
	if has(stopWords, strings.ToLower(id)) {
		return true
	}
	return len(id) < 3 || id != strings.ToUpper(id)
}

func dates(text string) []string {
	return dateRe.FindAllString(text, -1)
}

type amount struct {
	display string
	value   float64
}

// amounts returns every currency-marked number in order of appearance.
func amounts(text string) []amount {
	var out []amount
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		display := "$" + m[1]
		v, ok := domain.ParseAmount(display)
		if !ok {
			continue
		}
		out = append(out, amount{display: display, value: v})
	}
	return out
}

// largest picks the numerically largest amount; the earliest wins ties.
func largest(as []amount) (amount, bool) {
	if len(as) == 0 {
		return amount{}, false
	}
	best := as[0]
	for _, a := range as[1:] {
		if a.value > best.value {
			best = a
		}
	}
	return best, true
}

func first(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindString(text)
	return strings.TrimSpace(m), m != ""
}

// term normalizes "2-year" or "12 Months" to "2 years" / "12 months".
func term(text string) (string, bool) {
	m := termRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	unit := strings.ToLower(m[2])
	if n > 1 {
		unit += "s"
	}
	return strconv.Itoa(n) + " " + unit, true
}
