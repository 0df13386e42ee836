// Package words provides language-aware word counting for length control.
package words

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/hailamir/academic-report-api/internal/models"
)

// arabicDiacritic reports whether r is a Tashkeel mark or Tatweel, which
// carry no lexical weight and must not skew counts.
func arabicDiacritic(r rune) bool {
	if r >= 0x064B && r <= 0x0652 {
		return true
	}
	return r == 0x0640 || r == 0x0670
}

// Count returns the number of words in text. English words are
// whitespace-delimited, so hyphenated compounds count once. Arabic is
// stripped of diacritics and run through Unicode word segmentation, which
// handles joined script where whitespace splitting does not. Punctuation-only
// tokens never count.
func Count(text string, lang models.Language) int {
	if lang == models.LanguageArabic {
		count := 0
		tokens := words.FromString(stripDiacritics(text))
		for tokens.Next() {
			if wordLike(tokens.Value()) {
				count++
			}
		}
		return count
	}

	count := 0
	for _, field := range strings.Fields(text) {
		if wordLike(field) {
			count++
		}
	}
	return count
}

// CountBlocks sums the word counts of all paragraph and bullet blocks.
// Headings are structural and do not contribute to the body budget.
func CountBlocks(blocks []models.Block, lang models.Language) int {
	total := 0
	for _, b := range blocks {
		if b.Kind == models.BlockParagraph || b.Kind == models.BlockBullet {
			total += Count(b.Text, lang)
		}
	}
	return total
}

func stripDiacritics(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if arabicDiacritic(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// wordLike reports whether a segment contains at least one letter or digit.
func wordLike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
