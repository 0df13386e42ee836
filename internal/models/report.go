package models

// Language enumerates supported report languages.
type Language string

const (
	LanguageEnglish Language = "EN"
	LanguageArabic  Language = "AR"
)

// Valid reports whether the language is one of the recognized values.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// Direction returns the text direction for the language.
func (l Language) Direction() TextDirection {
	if l == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// TextDirection captures paragraph/heading flow for rendering.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// CitationStyle enumerates supported bibliographic styles.
type CitationStyle string

const (
	StyleAPA     CitationStyle = "APA"
	StyleIEEE    CitationStyle = "IEEE"
	StyleMLA     CitationStyle = "MLA"
	StyleHarvard CitationStyle = "Harvard"
	StyleChicago CitationStyle = "Chicago"
)

// Valid reports whether the style is one of the five recognized values.
func (s CitationStyle) Valid() bool {
	switch s {
	case StyleAPA, StyleIEEE, StyleMLA, StyleHarvard, StyleChicago:
		return true
	}
	return false
}

// Page count bounds accepted for a report request.
const (
	MinPages = 5
	MaxPages = 40
)

// ReportRequest is the immutable input of the composition pipeline.
type ReportRequest struct {
	Title        string        `json:"title" validate:"notblank"`
	Language     Language      `json:"language"`
	StudentNames string        `json:"student_names" validate:"notblank"`
	Professor    string        `json:"professor" validate:"notblank"`
	University   string        `json:"university" validate:"notblank"`
	College      string        `json:"college" validate:"notblank"`
	Department   string        `json:"department" validate:"notblank"`
	AcademicYear string        `json:"academic_year" validate:"notblank"`
	Pages        int           `json:"pages"`
	Style        CitationStyle `json:"style"`
}

// SectionKind names a content unit of the composed report.
type SectionKind string

const (
	SectionCoverPage        SectionKind = "cover_page"
	SectionTableOfContents  SectionKind = "table_of_contents"
	SectionIntroduction     SectionKind = "introduction"
	SectionLiteratureReview SectionKind = "literature_review"
	SectionMethodology      SectionKind = "methodology"
	SectionResultsAnalysis  SectionKind = "results_analysis"
	SectionDiscussion       SectionKind = "discussion"
	SectionConclusion       SectionKind = "conclusion"
	SectionReferences       SectionKind = "references"
)

// BodySectionOrder lists the word-count-bearing sections in canonical order.
var BodySectionOrder = []SectionKind{
	SectionIntroduction,
	SectionLiteratureReview,
	SectionMethodology,
	SectionResultsAnalysis,
	SectionDiscussion,
	SectionConclusion,
}

// BlockKind discriminates sub-block content.
type BlockKind string

const (
	BlockHeading1  BlockKind = "h1"
	BlockHeading2  BlockKind = "h2"
	BlockParagraph BlockKind = "paragraph"
	BlockBullet    BlockKind = "bullet"
)

// Block is a single renderable sub-unit of a section.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Section groups ordered blocks under one named unit.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Title  string      `json:"title"`
	Blocks []Block     `json:"blocks"`

	// TargetWords and WordCount track the length-control outcome for
	// word-count-bearing sections; zero for structural sections.
	TargetWords     int  `json:"target_words,omitempty"`
	WordCount       int  `json:"word_count,omitempty"`
	WithinTolerance bool `json:"within_tolerance,omitempty"`
}

// FormatPolicy is the fixed rendering contract handed to the exporter.
type FormatPolicy struct {
	FontFamily  string        `json:"font_family"`
	FontSizePt  int           `json:"font_size_pt"`
	LineSpacing float64       `json:"line_spacing"`
	Direction   TextDirection `json:"direction"`
}

// DefaultFormatPolicy returns the policy mandated for all reports.
func DefaultFormatPolicy(lang Language) FormatPolicy {
	return FormatPolicy{
		FontFamily:  "Times New Roman",
		FontSizePt:  14,
		LineSpacing: 1.5,
		Direction:   lang.Direction(),
	}
}

// ComposedReport is the fully structured in-memory document ready for export.
type ComposedReport struct {
	Request        ReportRequest `json:"request"`
	Sections       []Section     `json:"sections"`
	Format         FormatPolicy  `json:"format"`
	TargetWords    int           `json:"target_words"`
	BodyWordCount  int           `json:"body_word_count"`
	ToleranceMet   bool          `json:"tolerance_met"`
	AdjustmentNote string        `json:"adjustment_note,omitempty"`
}
