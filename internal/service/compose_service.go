package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hailamir/academic-report-api/internal/citation"
	"github.com/hailamir/academic-report-api/internal/content"
	"github.com/hailamir/academic-report-api/internal/lengthctl"
	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/internal/words"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
)

// ComposeConfig carries the composition policy. Values are threaded in from
// application configuration so the composer never reads globals.
type ComposeConfig struct {
	WordsPerPage   int
	Tolerance      float64
	MaxPasses      int
	ReferenceCount int
	// ReferenceBaseYear anchors the deterministic reference pool; zero
	// means the current year.
	ReferenceBaseYear int
}

// sectionWeights splits the body word budget across the six content-bearing
// sections. Cover page, table of contents, and references carry no budget.
var sectionWeights = map[models.SectionKind]float64{
	models.SectionIntroduction:     0.15,
	models.SectionLiteratureReview: 0.25,
	models.SectionMethodology:      0.20,
	models.SectionResultsAnalysis:  0.20,
	models.SectionDiscussion:       0.12,
	models.SectionConclusion:       0.08,
}

// ComposeService builds a fully structured report from a validated request.
// Build is a pure function of the request and the configured policy: no
// network, no I/O, no randomness.
type ComposeService struct {
	cfg       ComposeConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComposeService constructs the composer.
func NewComposeService(cfg ComposeConfig, validate *validator.Validate, logger *zap.Logger) *ComposeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WordsPerPage <= 0 {
		cfg.WordsPerPage = 360
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 0.05
	}
	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = 3
	}
	if cfg.ReferenceCount <= 0 {
		cfg.ReferenceCount = 8
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &ComposeService{cfg: cfg, validator: validate, logger: logger}
}

// Build validates the request and composes the complete report. Validation
// failures are the only errors: once generation starts, length misses are
// recorded on the result rather than failing it.
func (s *ComposeService) Build(req models.ReportRequest) (*models.ComposedReport, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	lang := req.Language
	target := req.Pages * s.cfg.WordsPerPage
	adjustCfg := lengthctl.Config{Tolerance: s.cfg.Tolerance, MaxPasses: s.cfg.MaxPasses}
	pool := lengthctl.Pool{
		Elaborations: content.Elaborations(lang),
		Fillers:      content.FillerPhrases(lang),
	}

	sections := make([]models.Section, 0, len(models.BodySectionOrder)+3)
	sections = append(sections, s.coverPage(req))
	sections = append(sections, s.tableOfContents(lang))

	body := make([]models.Section, 0, len(models.BodySectionOrder))
	for _, kind := range models.BodySectionOrder {
		sec := models.Section{
			Kind:   kind,
			Title:  content.SectionTitle(kind, lang),
			Blocks: content.Generate(kind, lang, req.Title),
		}
		subTarget := int(float64(target) * sectionWeights[kind])
		lengthctl.AdjustSection(&sec, subTarget, adjustCfg, pool, lang)
		body = append(body, sec)
	}

	bodyCount := bodyWordCount(body, lang)
	min, max := lengthctl.Band(target, s.cfg.Tolerance)
	if bodyCount < min || bodyCount > max {
		s.rebalance(body, bodyCount-target, adjustCfg, pool, lang)
		bodyCount = bodyWordCount(body, lang)
	}

	refs, err := s.references(req)
	if err != nil {
		return nil, err
	}

	sections = append(sections, body...)
	sections = append(sections, refs)

	report := &models.ComposedReport{
		Request:       req,
		Sections:      sections,
		Format:        models.DefaultFormatPolicy(lang),
		TargetWords:   target,
		BodyWordCount: bodyCount,
		ToleranceMet:  bodyCount >= min && bodyCount <= max,
	}
	if !report.ToleranceMet {
		report.AdjustmentNote = fmt.Sprintf("body word count %d outside tolerance band [%d, %d] after %d passes", bodyCount, min, max, s.cfg.MaxPasses)
		s.logger.Sugar().Infow("tolerance band missed",
			"title", req.Title, "target", target, "body_words", bodyCount)
	}
	return report, nil
}

// Validate applies the fatal pre-generation checks.
func (s *ComposeService) Validate(req models.ReportRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return appErrors.Clone(appErrors.ErrInvalidRequest, fields[0].Field()+" is required")
		}
		return appErrors.Wrap(err, appErrors.ErrInvalidRequest.Code, appErrors.ErrInvalidRequest.Status, "invalid request")
	}
	if req.Pages < models.MinPages || req.Pages > models.MaxPages {
		return appErrors.Clone(appErrors.ErrInvalidRequest,
			fmt.Sprintf("pages must be between %d and %d", models.MinPages, models.MaxPages))
	}
	if !req.Language.Valid() {
		return appErrors.Clone(appErrors.ErrUnsupportedLanguage,
			fmt.Sprintf("language %q is not supported", req.Language))
	}
	if !req.Style.Valid() {
		return appErrors.Clone(appErrors.ErrUnsupportedStyle,
			fmt.Sprintf("citation style %q is not supported", req.Style))
	}
	return nil
}

// rebalance runs one document-level pass when the aggregate misses the
// global band even though each section was adjusted. The residual is spread
// across sections by their budget weight, then each section is re-adjusted
// against its shifted target, under the same pass bound. The shifted target
// steers only the adjustment: the recorded per-section target stays the
// policy sub-target so it depends on the request, not on how far a given
// language's content happened to land.
func (s *ComposeService) rebalance(body []models.Section, residual int, cfg lengthctl.Config, pool lengthctl.Pool, lang models.Language) {
	for i := range body {
		share := int(float64(residual) * sectionWeights[body[i].Kind])
		if share == 0 {
			continue
		}
		newTarget := body[i].WordCount - share
		if newTarget < 1 {
			newTarget = 1
		}
		policyTarget := body[i].TargetWords
		lengthctl.AdjustSection(&body[i], newTarget, cfg, pool, lang)
		body[i].TargetWords = policyTarget
	}
}

func (s *ComposeService) coverPage(req models.ReportRequest) models.Section {
	lang := req.Language
	labels := coverLabelsEN
	if lang == models.LanguageArabic {
		labels = coverLabelsAR
	}
	blocks := []models.Block{
		{Kind: models.BlockParagraph, Text: req.University},
		{Kind: models.BlockParagraph, Text: req.College},
		{Kind: models.BlockParagraph, Text: req.Department},
		{Kind: models.BlockHeading1, Text: req.Title},
		{Kind: models.BlockParagraph, Text: labels.preparedBy + ": " + req.StudentNames},
		{Kind: models.BlockParagraph, Text: labels.supervisedBy + ": " + req.Professor},
		{Kind: models.BlockParagraph, Text: labels.academicYear + ": " + req.AcademicYear},
	}
	return models.Section{
		Kind:   models.SectionCoverPage,
		Title:  content.SectionTitle(models.SectionCoverPage, lang),
		Blocks: blocks,
	}
}

// tableOfContents lists section headings in order with no page numbers;
// pagination belongs to the renderer, not the composer.
func (s *ComposeService) tableOfContents(lang models.Language) models.Section {
	blocks := []models.Block{
		{Kind: models.BlockHeading1, Text: content.SectionTitle(models.SectionTableOfContents, lang)},
	}
	for _, kind := range models.BodySectionOrder {
		blocks = append(blocks, models.Block{Kind: models.BlockBullet, Text: content.SectionTitle(kind, lang)})
	}
	blocks = append(blocks, models.Block{Kind: models.BlockBullet, Text: content.SectionTitle(models.SectionReferences, lang)})
	return models.Section{
		Kind:   models.SectionTableOfContents,
		Title:  content.SectionTitle(models.SectionTableOfContents, lang),
		Blocks: blocks,
	}
}

func (s *ComposeService) references(req models.ReportRequest) (models.Section, error) {
	baseYear := s.cfg.ReferenceBaseYear
	if baseYear == 0 {
		baseYear = time.Now().Year()
	}
	entries := citation.SamplePool(req.Title, s.cfg.ReferenceCount, baseYear)
	formatted, err := citation.Format(req.Style, entries)
	if err != nil {
		return models.Section{}, err
	}

	blocks := []models.Block{
		{Kind: models.BlockHeading1, Text: content.SectionTitle(models.SectionReferences, req.Language)},
	}
	for _, line := range formatted {
		blocks = append(blocks, models.Block{Kind: models.BlockParagraph, Text: line})
	}
	return models.Section{
		Kind:   models.SectionReferences,
		Title:  content.SectionTitle(models.SectionReferences, req.Language),
		Blocks: blocks,
	}, nil
}

func bodyWordCount(body []models.Section, lang models.Language) int {
	total := 0
	for i := range body {
		total += words.CountBlocks(body[i].Blocks, lang)
	}
	return total
}

type coverLabels struct {
	preparedBy   string
	supervisedBy string
	academicYear string
}

var coverLabelsEN = coverLabels{
	preparedBy:   "Prepared by",
	supervisedBy: "Supervised by",
	academicYear: "Academic Year",
}

var coverLabelsAR = coverLabels{
	preparedBy:   "إعداد",
	supervisedBy: "إشراف",
	academicYear: "العام الدراسي",
}
