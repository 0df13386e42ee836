package lengthctl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/content"
	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/internal/words"
)

var testCfg = Config{Tolerance: 0.05, MaxPasses: 3}

func testPool() Pool {
	return Pool{
		Elaborations: content.Elaborations(models.LanguageEnglish),
		Fillers:      content.FillerPhrases(models.LanguageEnglish),
	}
}

func repeatSentence(sentence string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = sentence
	}
	return strings.Join(parts, " ")
}

func TestBand(t *testing.T) {
	min, max := Band(3600, 0.05)
	assert.Equal(t, 3420, min)
	assert.Equal(t, 3780, max)
}

func TestAdjustAlreadyInBand(t *testing.T) {
	text := repeatSentence("Ten words are in this exact sentence right here now.", 10)
	out, res := Adjust(text, 100, testCfg, testPool(), models.LanguageEnglish)
	assert.Equal(t, text, out)
	assert.True(t, res.WithinTolerance)
	assert.Zero(t, res.Passes)
}

func TestAdjustExpandsShortContent(t *testing.T) {
	// Starts at 40% of the target.
	text := repeatSentence("This report examines the topic in appropriate scholarly depth.", 8)
	start := words.Count(text, models.LanguageEnglish)
	target := start * 10 / 4

	out, res := Adjust(text, target, testCfg, testPool(), models.LanguageEnglish)
	final := words.Count(out, models.LanguageEnglish)

	assert.Equal(t, final, res.WordCount)
	assert.Greater(t, final, start)
	if !res.WithinTolerance {
		assert.Equal(t, testCfg.MaxPasses, res.Passes)
	}
}

func TestAdjustReachesLargeTargets(t *testing.T) {
	// A 40-page request puts several thousand words on a single section;
	// the expansion pool must cycle as often as that takes.
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageArabic} {
		pool := Pool{
			Elaborations: content.Elaborations(lang),
			Fillers:      content.FillerPhrases(lang),
		}
		seed := pool.Elaborations[0]
		target := 3600

		_, res := Adjust(seed, target, testCfg, pool, lang)
		min, max := Band(target, testCfg.Tolerance)
		assert.True(t, res.WithinTolerance, "lang=%s count=%d", lang, res.WordCount)
		assert.GreaterOrEqual(t, res.WordCount, min, "lang=%s", lang)
		assert.LessOrEqual(t, res.WordCount, max, "lang=%s", lang)
	}
}

func TestAdjustTrimsLongContent(t *testing.T) {
	filler := "It should be noted that the findings matter. "
	text := strings.TrimSpace(strings.Repeat(filler, 40))
	start := words.Count(text, models.LanguageEnglish)
	target := start / 2

	out, res := Adjust(text, target, testCfg, testPool(), models.LanguageEnglish)
	final := words.Count(out, models.LanguageEnglish)

	assert.Less(t, final, start)
	min, max := Band(target, testCfg.Tolerance)
	if res.WithinTolerance {
		assert.GreaterOrEqual(t, final, min)
		assert.LessOrEqual(t, final, max)
	} else {
		assert.Equal(t, testCfg.MaxPasses, res.Passes)
	}
}

// The round-trip property: the result is inside the band, or every pass was
// spent. Never neither.
func TestAdjustBandOrExhaustion(t *testing.T) {
	targets := []int{40, 120, 360, 900, 1800}
	seed := repeatSentence("The study considers several closely related questions in turn.", 6)
	for _, target := range targets {
		_, res := Adjust(seed, target, testCfg, testPool(), models.LanguageEnglish)
		if !res.WithinTolerance {
			assert.Equal(t, testCfg.MaxPasses, res.Passes, "target %d", target)
		}
	}
}

func TestAdjustDeterministic(t *testing.T) {
	text := repeatSentence("Deterministic inputs must give deterministic outputs every time.", 5)
	outA, resA := Adjust(text, 400, testCfg, testPool(), models.LanguageEnglish)
	outB, resB := Adjust(text, 400, testCfg, testPool(), models.LanguageEnglish)
	assert.Equal(t, outA, outB)
	assert.Equal(t, resA, resB)
}

func TestAdjustSectionPreservesHeadings(t *testing.T) {
	sec := models.Section{
		Kind:  models.SectionMethodology,
		Title: "Methodology",
		Blocks: []models.Block{
			{Kind: models.BlockHeading1, Text: "Methodology"},
			{Kind: models.BlockParagraph, Text: repeatSentence("The design follows a structured plan with documented procedures.", 3)},
			{Kind: models.BlockHeading2, Text: "Research Design"},
			{Kind: models.BlockBullet, Text: "Clearly defined questions"},
		},
	}
	res := AdjustSection(&sec, 300, testCfg, testPool(), models.LanguageEnglish)

	require.GreaterOrEqual(t, len(sec.Blocks), 4)
	assert.Equal(t, models.BlockHeading1, sec.Blocks[0].Kind)
	assert.Equal(t, "Methodology", sec.Blocks[0].Text)
	assert.Equal(t, models.BlockHeading2, sec.Blocks[2].Kind)
	assert.Equal(t, res.WordCount, sec.WordCount)
	assert.Equal(t, 300, sec.TargetWords)
}

func TestAdjustSectionExhaustionIsNotAnError(t *testing.T) {
	sec := models.Section{Blocks: []models.Block{
		{Kind: models.BlockParagraph, Text: "Too short."},
	}}
	// Unreachable target: pool cycles are capped, so passes run out.
	res := AdjustSection(&sec, 50000, testCfg, testPool(), models.LanguageEnglish)
	assert.False(t, res.WithinTolerance)
	assert.Equal(t, testCfg.MaxPasses, res.Passes)
	assert.Greater(t, res.WordCount, 2)
}

func TestAdjustArabicUsesArabicPool(t *testing.T) {
	pool := Pool{
		Elaborations: content.Elaborations(models.LanguageArabic),
		Fillers:      content.FillerPhrases(models.LanguageArabic),
	}
	text := "يعرض هذا القسم نتائج البحث ويناقش آثارها."
	out, res := Adjust(text, 80, testCfg, pool, models.LanguageArabic)
	assert.Greater(t, words.Count(out, models.LanguageArabic), words.Count(text, models.LanguageArabic))
	if !res.WithinTolerance {
		assert.Equal(t, testCfg.MaxPasses, res.Passes)
	}
}
