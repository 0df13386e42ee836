package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/hailamir/academic-report-api/internal/models"
)

// DOCXExporter renders a composed report into a WordprocessingML package.
type DOCXExporter struct{}

// NewDOCXExporter constructs a DOCX exporter.
func NewDOCXExporter() *DOCXExporter {
	return &DOCXExporter{}
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

// Render produces the DOCX bytes for a composed report, honoring the fixed
// formatting policy: Times New Roman, 14pt, 1.5 line spacing, RTL for Arabic.
func (e *DOCXExporter) Render(report *models.ComposedReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report nil")
	}

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	rtl := report.Format.Direction == models.DirectionRTL
	for i, sec := range report.Sections {
		e.writeSection(&doc, sec, rtl)
		if sectionEndsPage(sec.Kind) && i < len(report.Sections)-1 {
			doc.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		}
	}

	doc.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	doc.WriteString(`</w:body></w:document>`)

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", doc.String()},
		{"word/styles.xml", stylesXML(report.Format)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create docx part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("write docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize docx: %w", err)
	}
	return buf.Bytes(), nil
}

// sectionEndsPage reports whether a page break follows the section, matching
// the house layout: cover page and table of contents stand alone.
func sectionEndsPage(kind models.SectionKind) bool {
	return kind == models.SectionCoverPage || kind == models.SectionTableOfContents
}

func (e *DOCXExporter) writeSection(doc *strings.Builder, sec models.Section, rtl bool) {
	for _, block := range sec.Blocks {
		switch block.Kind {
		case models.BlockHeading1:
			writeParagraph(doc, block.Text, paragraphOpts{bold: true, sizeHalfPt: 32, rtl: rtl, center: sec.Kind == models.SectionCoverPage || sec.Kind == models.SectionTableOfContents})
		case models.BlockHeading2:
			writeParagraph(doc, block.Text, paragraphOpts{bold: true, sizeHalfPt: 28, rtl: rtl})
		case models.BlockBullet:
			writeParagraph(doc, "• "+block.Text, paragraphOpts{sizeHalfPt: 28, rtl: rtl, indent: true})
		default:
			writeParagraph(doc, block.Text, paragraphOpts{sizeHalfPt: 28, rtl: rtl, center: sec.Kind == models.SectionCoverPage})
		}
	}
}

type paragraphOpts struct {
	bold       bool
	sizeHalfPt int
	rtl        bool
	center     bool
	indent     bool
}

func writeParagraph(doc *strings.Builder, text string, opts paragraphOpts) {
	doc.WriteString(`<w:p><w:pPr>`)
	doc.WriteString(`<w:spacing w:line="360" w:lineRule="auto"/>`)
	if opts.rtl {
		doc.WriteString(`<w:bidi w:val="1"/>`)
	}
	switch {
	case opts.center:
		doc.WriteString(`<w:jc w:val="center"/>`)
	case opts.rtl:
		doc.WriteString(`<w:jc w:val="right"/>`)
	default:
		doc.WriteString(`<w:jc w:val="both"/>`)
	}
	if opts.indent {
		if opts.rtl {
			doc.WriteString(`<w:ind w:right="720"/>`)
		} else {
			doc.WriteString(`<w:ind w:left="720"/>`)
		}
	}
	doc.WriteString(`</w:pPr><w:r><w:rPr>`)
	doc.WriteString(`<w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/>`)
	if opts.bold {
		doc.WriteString(`<w:b/>`)
	}
	if opts.rtl {
		doc.WriteString(`<w:rtl/>`)
	}
	fmt.Fprintf(doc, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, opts.sizeHalfPt, opts.sizeHalfPt)
	doc.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	doc.WriteString(escapeXML(text))
	doc.WriteString(`</w:t></w:r></w:p>`)
}

func stylesXML(policy models.FormatPolicy) string {
	// Sizes are half-points in WordprocessingML; line 360 with lineRule auto
	// is 1.5 spacing.
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr>
<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>
<w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/>
</w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:line="360" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>
</w:styles>`, policy.FontFamily, policy.FontSizePt*2)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
