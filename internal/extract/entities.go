package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Lightweight named-entity heuristics: runs of capitalized words, split at
// words that are capitalized for grammatical or layout reasons rather than
// because they name something.

var wordRe = regexp.MustCompile(`[A-Za-z&][A-Za-z'&.-]*`)

var stopWords = toSet(
	// calendar
	"jan", "january", "feb", "february", "mar", "march", "apr", "april", "may", "jun", "june",
	"jul", "july", "aug", "august", "sep", "sept", "september", "oct", "october", "nov", "november",
	"dec", "december", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	// document vocabulary
	"invoice", "inv", "contract", "agreement", "date", "dated", "total", "subtotal", "amount", "due",
	"balance", "bill", "billed", "ship", "shipped", "payment", "paid", "pay", "tax", "number", "no",
	"phone", "tel", "fax", "email", "e-mail", "from", "to", "for", "of", "and", "the", "this", "that",
	"these", "between", "by", "with", "dear", "re", "subject", "attn", "terms", "term", "effective",
	"expiration", "expiry", "party", "parties", "signed", "signature", "page", "address", "contact",
	"customer", "client", "vendor", "seller", "buyer", "supplier", "description", "quantity", "qty",
	"price", "unit", "item", "items", "order", "po", "purchase", "reference", "ref", "account",
	"thank", "thanks", "please", "remit", "whereas", "now", "therefore", "in", "on", "at", "as",
	"is", "hereby", "section", "article", "schedule", "exhibit", "value", "note", "notes",
	"sincerely", "regards", "name", "title", "witness", "whereof", "agreed", "accepted", "usd",
	"service", "services", "we", "you", "our", "your", "it", "all", "any", "each", "if",
)

var orgSuffixes = toSet(
	"inc", "incorporated", "llc", "llp", "lp", "ltd", "limited", "corp", "corporation", "co",
	"company", "gmbh", "plc", "ag", "sa", "group", "holdings", "industries", "solutions",
	"systems", "technologies", "partners", "associates", "enterprises", "bank", "international",
	"foundation", "university", "labs", "consulting",
)

var honorifics = toSet("mr", "mrs", "ms", "miss", "dr", "prof")

// abbreviations keep a phrase going past their trailing period.
var abbreviations = toSet("inc", "corp", "co", "ltd", "mr", "mrs", "ms", "dr", "prof", "jr", "sr", "st")

func toSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

func has(set map[string]struct{}, w string) bool {
	_, ok := set[strings.ToLower(w)]
	return ok
}

type phrase []string

func (p phrase) String() string { return strings.Join(p, " ") }

// organization reports whether the phrase ends in a corporate suffix.
func (p phrase) organization() bool {
	return len(p) >= 2 && has(orgSuffixes, p[len(p)-1])
}

// person reports whether the phrase reads like a personal name: two or three
// title-case words with no corporate suffix. The returned name drops any
// leading honorific.
func (p phrase) person() (phrase, bool) {
	names := p
	if len(names) > 0 && has(honorifics, names[0]) {
		names = names[1:]
	}
	if len(names) < 2 || len(names) > 3 {
		return nil, false
	}
	for _, w := range names {
		if has(orgSuffixes, w) || !titleCase(w) {
			return nil, false
		}
	}
	return names, true
}

func titleCase(w string) bool {
	rs := []rune(w)
	if len(rs) == 0 || !unicode.IsUpper(rs[0]) {
		return false
	}
	if len(rs) == 1 {
		return true
	}
	for _, r := range rs[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return false
		}
	}
	// All-caps words are acronyms or headings, not names.
	return strings.ToUpper(w) != w
}

func capitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}

// phrases scans text left to right and returns candidate entity phrases.
func phrases(text string) []phrase {
	var (
		out  []phrase
		cur  phrase
		prev = -1
	)
	flush := func() {
		out = append(out, split(cur)...)
		cur = nil
	}
	for _, loc := range wordRe.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if prev >= 0 && !blankGap(text[prev:loc[0]]) {
			flush()
		}
		prev = loc[1]

		if !capitalized(word) && word != "&" {
			flush()
			continue
		}
		trimmed := strings.TrimRight(word, ".-'")
		cur = append(cur, trimmed)
		if strings.HasSuffix(word, ".") && !has(abbreviations, trimmed) && len([]rune(trimmed)) > 1 {
			flush()
		}
	}
	flush()
	return out
}

func blankGap(s string) bool {
	return strings.Trim(s, " \t") == ""
}

// split breaks a run of capitalized words at stop words and trims
// connectors left dangling at either end.
func split(run phrase) []phrase {
	var (
		out []phrase
		cur phrase
	)
	emit := func() {
		for len(cur) > 0 && cur[0] == "&" {
			cur = cur[1:]
		}
		for len(cur) > 0 && cur[len(cur)-1] == "&" {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, w := range run {
		if w == "" || (has(stopWords, w) && !has(orgSuffixes, w)) {
			emit()
			continue
		}
		cur = append(cur, w)
	}
	emit()
	return out
}

type entities struct {
	people        []string
	organizations []string
	multiword     []string
}

func findEntities(text string) entities {
	var e entities
	for _, p := range phrases(text) {
		if p.organization() {
			e.organizations = append(e.organizations, p.String())
		} else if name, ok := p.person(); ok {
			e.people = append(e.people, name.String())
		}
		if len(p) >= 2 {
			e.multiword = append(e.multiword, p.String())
		}
	}
	return e
}
