package lyrics

import (
	"regexp"
	"strings"
)

// Language codes returned by DetectLanguage.
const (
	LanguageEnglish = "en"
	LanguageDutch   = "nl"
)

// Fixed stop-word lists for the majority heuristic. This is not a
// statistical classifier: short or mixed-language texts will be
// misclassified, which is an accepted limitation.
var (
	dutchWords = wordSet("de", "het", "een", "van", "is", "en", "dat", "je",
		"niet", "op", "zijn", "maar", "als", "voor")
	englishWords = wordSet("the", "and", "of", "to", "a", "in", "is", "you",
		"that", "it", "for", "with", "as", "was")
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// DetectLanguage classifies lyrics text as Dutch or English by
// counting stop-word occurrences. Ties and an English lead both
// resolve to English.
func DetectLanguage(text string) string {
	var dutch, english int
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if dutchWords[word] {
			dutch++
		}
		if englishWords[word] {
			english++
		}
	}
	if dutch > english {
		return LanguageDutch
	}
	return LanguageEnglish
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
