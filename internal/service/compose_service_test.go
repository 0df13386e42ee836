package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/models"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
)

func composeTestConfig() ComposeConfig {
	return ComposeConfig{
		WordsPerPage:      360,
		Tolerance:         0.05,
		MaxPasses:         3,
		ReferenceCount:    8,
		ReferenceBaseYear: 2024,
	}
}

func validRequest() models.ReportRequest {
	return models.ReportRequest{
		Title:        "Effects of Sleep on Memory",
		Language:     models.LanguageEnglish,
		StudentNames: "Sara Ahmed, Omar Khalid",
		Professor:    "Dr. Lina Haddad",
		University:   "Cairo University",
		College:      "Faculty of Science",
		Department:   "Department of Biology",
		AcademicYear: "2024-2025",
		Pages:        10,
		Style:        models.StyleAPA,
	}
}

func TestComposeBuildEnglish(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	report, err := svc.Build(validRequest())
	require.NoError(t, err)
	require.Equal(t, 3600, report.TargetWords)

	wantKinds := []models.SectionKind{
		models.SectionCoverPage,
		models.SectionTableOfContents,
		models.SectionIntroduction,
		models.SectionLiteratureReview,
		models.SectionMethodology,
		models.SectionResultsAnalysis,
		models.SectionDiscussion,
		models.SectionConclusion,
		models.SectionReferences,
	}
	require.Len(t, report.Sections, len(wantKinds))
	for i, sec := range report.Sections {
		assert.Equal(t, wantKinds[i], sec.Kind)
	}

	assert.Equal(t, "Times New Roman", report.Format.FontFamily)
	assert.Equal(t, 14, report.Format.FontSizePt)
	assert.Equal(t, 1.5, report.Format.LineSpacing)
	assert.Equal(t, models.DirectionLTR, report.Format.Direction)

	// Body sections carry targets; structural sections carry none.
	assert.Zero(t, report.Sections[0].TargetWords)
	assert.Zero(t, report.Sections[1].TargetWords)
	for _, sec := range report.Sections[2:8] {
		assert.Positive(t, sec.TargetWords, "section %s", sec.Kind)
		assert.Positive(t, sec.WordCount, "section %s", sec.Kind)
	}

	// References: one heading plus eight formatted entries, APA order is
	// alphabetical by first author surname.
	refs := report.Sections[8]
	require.Len(t, refs.Blocks, 9)
	assert.Equal(t, models.BlockHeading1, refs.Blocks[0].Kind)
	assert.True(t, strings.HasPrefix(refs.Blocks[1].Text, "Anderson"), refs.Blocks[1].Text)
	assert.True(t, strings.HasPrefix(refs.Blocks[8].Text, "White"), refs.Blocks[8].Text)

	assert.Positive(t, report.BodyWordCount)
	if report.ToleranceMet {
		assert.Empty(t, report.AdjustmentNote)
	} else {
		assert.NotEmpty(t, report.AdjustmentNote)
	}
}

func TestComposeBuildArabic(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	req := validRequest()
	req.Language = models.LanguageArabic

	report, err := svc.Build(req)
	require.NoError(t, err)
	require.Equal(t, 3600, report.TargetWords)
	require.Len(t, report.Sections, 9)

	assert.Equal(t, models.DirectionRTL, report.Format.Direction)
	assert.Equal(t, "المقدمة", report.Sections[2].Title)
	assert.Equal(t, "المراجع", report.Sections[8].Title)

	// Same budget split as the English run.
	en, err := NewComposeService(composeTestConfig(), nil, nil).Build(validRequest())
	require.NoError(t, err)
	for i := 2; i < 8; i++ {
		assert.Equal(t, en.Sections[i].TargetWords, report.Sections[i].TargetWords)
	}
}

func TestComposeSectionTargets(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	report, err := svc.Build(validRequest())
	require.NoError(t, err)

	want := map[models.SectionKind]int{
		models.SectionIntroduction:     540,
		models.SectionLiteratureReview: 900,
		models.SectionMethodology:      720,
		models.SectionResultsAnalysis:  720,
		models.SectionDiscussion:       432,
		models.SectionConclusion:       288,
	}
	// Recorded targets are the policy split even when the rebalance pass
	// shifted a section's adjustment goal.
	for _, sec := range report.Sections {
		target, ok := want[sec.Kind]
		if !ok {
			continue
		}
		assert.Equal(t, target, sec.TargetWords, "section %s", sec.Kind)
	}
}

func TestComposeValidateBoundaryPages(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	for _, pages := range []int{5, 40} {
		req := validRequest()
		req.Pages = pages
		require.NoError(t, svc.Validate(req), "pages=%d", pages)
	}
	for _, pages := range []int{4, 41, 0, -1} {
		req := validRequest()
		req.Pages = pages
		err := svc.Validate(req)
		require.Error(t, err, "pages=%d", pages)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrInvalidRequest.Code, appErr.Code)
		assert.Contains(t, appErr.Message, "between 5 and 40")
	}
}

func TestComposeUnsupportedStyle(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	req := validRequest()
	req.Style = models.CitationStyle("Vancouver")

	_, err := svc.Build(req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedStyle.Code, appErrors.FromError(err).Code)
}

func TestComposeUnsupportedLanguage(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	req := validRequest()
	req.Language = models.Language("FR")

	_, err := svc.Build(req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedLanguage.Code, appErrors.FromError(err).Code)
}

func TestComposeMissingRequiredField(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	req := validRequest()
	req.Professor = "   "

	_, err := svc.Build(req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidRequest.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "professor")
}

func TestComposeDeterminism(t *testing.T) {
	svc := NewComposeService(composeTestConfig(), nil, nil)

	first, err := svc.Build(validRequest())
	require.NoError(t, err)
	second, err := svc.Build(validRequest())
	require.NoError(t, err)

	require.Equal(t, first.BodyWordCount, second.BodyWordCount)
	require.Equal(t, first.Sections, second.Sections)
}
