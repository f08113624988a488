package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	trailingSlash  = regexp.MustCompile(`/\s*$`)
	trailingSemi   = regexp.MustCompile(`;\s*$`)
	trailingColon  = regexp.MustCompile(`:\s*$`)
	trailingPeriod = regexp.MustCompile(`\.\s*$`)

	quotedSummary = regexp.MustCompile(`^"(.+)"(\s*--?.*)?$`)
	number        = regexp.MustCompile(`\d+(\.\d+)?`)
	fourDigits    = regexp.MustCompile(`\d{4}`)
	digitRun      = regexp.MustCompile(`\d+`)
	ageRange      = regexp.MustCompile(`(\d+)(?:\D+(\d+))?`)
)

// Words left in lower case unless they open a title.
var minorWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"at": true, "by": true, "for": true, "from": true, "in": true, "into": true, "of": true, "on": true, "to": true, "with": true,
	"and": true, "but": true, "or": true, "nor": true, "so": true,
}

// CleanUnicode drops characters outside ASCII and the Latin-1 supplement.
func CleanUnicode(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 127 || (r >= 160 && r <= 255) {
			return r
		}
		return -1
	}, s)
}

// CleanProperName normalizes a personal, corporate or subject name: trailing
// commas go, and a trailing period goes when it follows a lower case letter
// so initials keep theirs.
func CleanProperName(s string) string {
	s = strings.TrimSpace(CleanUnicode(s))
	s = strings.TrimSuffix(s, ",")
	if n := len(s); n >= 2 && s[n-1] == '.' && s[n-2] >= 'a' && s[n-2] <= 'z' {
		s = s[:n-1]
	}
	return strings.TrimSpace(s)
}

// CleanRelation normalizes a relator term such as "author." or "illustrator,".
// Only the first comma or period is removed.
func CleanRelation(s string) string {
	s = strings.TrimSpace(CleanUnicode(s))
	if i := strings.IndexAny(s, ",."); i >= 0 {
		s = s[:i] + s[i+1:]
	}
	return strings.TrimSpace(s)
}

// FormatTitle strips ISBD punctuation left at the end of a title element and
// capitalizes every word apart from minor words after the first.
func FormatTitle(s string) string {
	s = strings.TrimSpace(CleanUnicode(s))
	for _, re := range []*regexp.Regexp{trailingSlash, trailingSemi, trailingColon, trailingPeriod} {
		s = re.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)

	words := strings.Split(s, " ")
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// CleanSummary unwraps a quoted blurb followed by its source, as in
// `"A tale of two cats"--Publisher.`, and ends it with a period. Anything
// else is returned untouched.
func CleanSummary(s string) string {
	m := quotedSummary.FindStringSubmatch(strings.TrimSpace(CleanUnicode(s)))
	if m == nil {
		return s
	}
	return strings.TrimSuffix(m[1], ".") + "."
}

// ParseFloat reads the first decimal number in s.
func ParseFloat(s string) (float64, bool) {
	m := number.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParsePageCount reads the page count from a physical description such as
// "32 p. :" or "62 pages ;". The digits must be followed, later on the same
// line, by a word starting with "p".
func ParsePageCount(s string) (int, bool) {
	for _, loc := range digitRun.FindAllStringIndex(s, -1) {
		if !pageMarkerAfter(s, loc[1]) {
			continue
		}
		n, err := strconv.Atoi(s[loc[0]:loc[1]])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func pageMarkerAfter(s string, from int) bool {
	for j := from; j < len(s) && s[j] != '\n'; j++ {
		if s[j] == 'p' && !isWordByte(s[j-1]) {
			return true
		}
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
