// Package lengthctl adjusts section content toward a target word count
// within a tolerance band, using bounded expansion and trimming passes.
package lengthctl

import (
	"strings"

	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/internal/words"
)

// Config carries the adjustment policy. Values are threaded in from service
// configuration rather than read from globals.
type Config struct {
	Tolerance float64
	MaxPasses int
}

// Pool supplies the deterministic candidate material for adjustment.
type Pool struct {
	// Elaborations are appended, in order, when content runs short.
	Elaborations []string
	// Fillers are low-information phrases removed first when trimming.
	Fillers []string
}

// Result reports the outcome of an adjustment run. WithinTolerance false
// with Passes == MaxPasses means the band was a goal the content could not
// reach, not an error.
type Result struct {
	WordCount       int
	TargetWords     int
	WithinTolerance bool
	Passes          int
}

// Band returns the accepted [min, max] word counts for a target.
func Band(targetWords int, tolerance float64) (int, int) {
	min := int(float64(targetWords) * (1 - tolerance))
	max := int(float64(targetWords) * (1 + tolerance))
	return min, max
}

// Adjust is the plain-text contract: it expands or trims text toward
// targetWords and returns the adjusted text alongside the outcome.
func Adjust(text string, targetWords int, cfg Config, pool Pool, lang models.Language) (string, Result) {
	sec := models.Section{Blocks: []models.Block{{Kind: models.BlockParagraph, Text: text}}}
	res := AdjustSection(&sec, targetWords, cfg, pool, lang)

	parts := make([]string, 0, len(sec.Blocks))
	for _, b := range sec.Blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, " "), res
}

// AdjustSection adjusts a section's paragraph and bullet blocks in place.
// Headings and section order are never touched. Each pass re-measures the
// whole section rather than tracking incremental deltas.
func AdjustSection(sec *models.Section, targetWords int, cfg Config, pool Pool, lang models.Language) Result {
	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = 3
	}
	min, max := Band(targetWords, cfg.Tolerance)

	res := Result{TargetWords: targetWords}
	elabIdx := 0

	for pass := 0; pass < cfg.MaxPasses; pass++ {
		count := words.CountBlocks(sec.Blocks, lang)
		if count >= min && count <= max {
			break
		}
		res.Passes++
		if count < min {
			elabIdx = expand(sec, min-count, pool.Elaborations, elabIdx, lang)
		} else {
			trim(sec, count-max, pool.Fillers, max, lang)
		}
	}

	res.WordCount = words.CountBlocks(sec.Blocks, lang)
	res.WithinTolerance = res.WordCount >= min && res.WordCount <= max
	sec.TargetWords = targetWords
	sec.WordCount = res.WordCount
	sec.WithinTolerance = res.WithinTolerance
	return res
}

// expand appends elaboration sentences as a trailing paragraph until the
// deficit is covered, cycling the pool as many times as the deficit needs.
// Returns the advanced pool cursor so later passes continue rather than
// repeat.
func expand(sec *models.Section, deficit int, elaborations []string, start int, lang models.Language) int {
	poolWords := 0
	for _, sentence := range elaborations {
		poolWords += words.Count(sentence, lang)
	}
	if poolWords == 0 {
		return start
	}

	var added []string
	addedWords := 0
	idx := start
	for addedWords < deficit {
		sentence := elaborations[idx%len(elaborations)]
		added = append(added, sentence)
		addedWords += words.Count(sentence, lang)
		idx++
	}
	if len(added) > 0 {
		sec.Blocks = append(sec.Blocks, models.Block{
			Kind: models.BlockParagraph,
			Text: strings.Join(added, " "),
		})
	}
	return idx
}

// trim removes filler phrases from paragraphs first, then drops trailing
// sentences of the last paragraph until at most max words remain.
func trim(sec *models.Section, excess int, fillers []string, max int, lang models.Language) {
	removed := 0
	for i := range sec.Blocks {
		if sec.Blocks[i].Kind != models.BlockParagraph {
			continue
		}
		for _, phrase := range fillers {
			for removed < excess {
				before := words.Count(sec.Blocks[i].Text, lang)
				stripped := removePhrase(sec.Blocks[i].Text, phrase)
				if stripped == sec.Blocks[i].Text {
					break
				}
				sec.Blocks[i].Text = stripped
				removed += before - words.Count(stripped, lang)
			}
			if removed >= excess {
				return
			}
		}
	}
	if removed >= excess {
		return
	}

	// Fillers alone were not enough; cut trailing sentences.
	for i := len(sec.Blocks) - 1; i >= 0 && removed < excess; i-- {
		if sec.Blocks[i].Kind != models.BlockParagraph {
			continue
		}
		for removed < excess {
			before := words.Count(sec.Blocks[i].Text, lang)
			shortened, ok := dropLastSentence(sec.Blocks[i].Text)
			if !ok {
				break
			}
			sec.Blocks[i].Text = shortened
			removed += before - words.Count(shortened, lang)
		}
	}
}

// removePhrase deletes the first case-insensitive occurrence of phrase and
// collapses the surrounding whitespace.
func removePhrase(text, phrase string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(phrase))
	if idx < 0 {
		return text
	}
	out := text[:idx] + text[idx+len(phrase):]
	return strings.Join(strings.Fields(out), " ")
}

// dropLastSentence removes the final sentence, keeping at least one.
func dropLastSentence(text string) (string, bool) {
	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return text, false
	}
	return strings.Join(sentences[:len(sentences)-1], " "), true
}

func splitSentences(text string) []string {
	var out []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '؟' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				out = append(out, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		out = append(out, s)
	}
	return out
}
