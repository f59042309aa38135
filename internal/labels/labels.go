package labels

import (
	"regexp"
	"strings"
)

var splitWords = regexp.MustCompile(`[_\-\s]+`)

// acronyms keep their casing when humanized.
var acronyms = map[string]string{
	"gpa":  "GPA",
	"rn":   "RN",
	"bsn":  "BSN",
	"bsw":  "BSW",
	"ged":  "GED",
	"tcpa": "TCPA",
	"abbr": "Abbr.",
}

// Humanize turns a catalog tag such as "gradYearSelect" or "has_rn" into a
// display name ("Grad Year Select", "Has RN"). It splits on underscores,
// dashes, spaces and camelCase boundaries.
func Humanize(tag string) string {
	if tag == "" {
		return ""
	}

	var segments []string
	for _, word := range splitWords.Split(tag, -1) {
		if word == "" {
			continue
		}
		for _, part := range strings.Fields(splitCamel(word)) {
			segments = append(segments, titleCase(part))
		}
	}
	return strings.Join(segments, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(rune(input[i-1]), r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	lower := strings.ToLower(word)
	if acronym, ok := acronyms[lower]; ok {
		return acronym
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
