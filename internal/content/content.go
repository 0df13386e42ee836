// Package content holds the boilerplate template pools used to seed report
// sections. Generation is a pure lookup keyed by (section kind, language) so
// the composer stays deterministic and the pools stay swappable.
package content

import (
	"strings"

	"github.com/hailamir/academic-report-api/internal/models"
)

// Subsection is a templated H2 unit with a lead paragraph and bullets.
type Subsection struct {
	Title   string
	Lead    string
	Bullets []string
}

// Template is the boilerplate seed for one body section.
type Template struct {
	Paragraphs  []string
	Subsections []Subsection
}

// SectionTitle returns the localized heading for a section kind.
func SectionTitle(kind models.SectionKind, lang models.Language) string {
	if lang == models.LanguageArabic {
		return titlesAR[kind]
	}
	return titlesEN[kind]
}

// Generate expands the template for (kind, lang) into ordered blocks,
// substituting the report topic. The leading H1 is included.
func Generate(kind models.SectionKind, lang models.Language, topic string) []models.Block {
	tmpl, ok := templateFor(kind, lang)
	if !ok {
		return nil
	}

	blocks := []models.Block{{Kind: models.BlockHeading1, Text: SectionTitle(kind, lang)}}
	for _, p := range tmpl.Paragraphs {
		blocks = append(blocks, models.Block{Kind: models.BlockParagraph, Text: fill(p, topic)})
	}
	for _, sub := range tmpl.Subsections {
		blocks = append(blocks, models.Block{Kind: models.BlockHeading2, Text: sub.Title})
		blocks = append(blocks, models.Block{Kind: models.BlockParagraph, Text: fill(sub.Lead, topic)})
		for _, b := range sub.Bullets {
			blocks = append(blocks, models.Block{Kind: models.BlockBullet, Text: fill(b, topic)})
		}
	}
	return blocks
}

// Elaborations returns the expansion sentence pool for a language. The
// length controller appends these, in order, when a section runs short.
func Elaborations(lang models.Language) []string {
	if lang == models.LanguageArabic {
		return elaborationsAR
	}
	return elaborationsEN
}

// FillerPhrases returns low-information phrases removed first when trimming.
func FillerPhrases(lang models.Language) []string {
	if lang == models.LanguageArabic {
		return fillersAR
	}
	return fillersEN
}

func templateFor(kind models.SectionKind, lang models.Language) (Template, bool) {
	if lang == models.LanguageArabic {
		t, ok := templatesAR[kind]
		return t, ok
	}
	t, ok := templatesEN[kind]
	return t, ok
}

// fill substitutes the {topic} placeholder used throughout the templates.
func fill(s, topic string) string {
	return strings.ReplaceAll(s, "{topic}", topic)
}
