// Package citation formats bibliographic entries in the five supported
// styles. Formatting is a pure mapping with no I/O.
package citation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hailamir/academic-report-api/internal/models"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
)

// Format renders entries as ordered citation strings for the given style.
// APA, Harvard, MLA and Chicago sort alphabetically by primary author
// surname. IEEE numbers entries in input order; without in-body citation
// tracking, input order stands in for order of first use.
func Format(style models.CitationStyle, entries []models.ReferenceEntry) ([]string, error) {
	if !style.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedStyle, fmt.Sprintf("unsupported citation style %q", style))
	}

	ordered := make([]models.ReferenceEntry, len(entries))
	copy(ordered, entries)
	if style != models.StyleIEEE {
		sort.SliceStable(ordered, func(i, j int) bool {
			return surname(ordered[i]) < surname(ordered[j])
		})
	}

	out := make([]string, 0, len(ordered))
	for i, ref := range ordered {
		var line string
		switch style {
		case models.StyleAPA:
			line = formatAPA(ref)
		case models.StyleIEEE:
			line = fmt.Sprintf("[%d] %s", i+1, formatIEEE(ref))
		case models.StyleMLA:
			line = formatMLA(ref)
		case models.StyleHarvard:
			line = formatHarvard(ref)
		case models.StyleChicago:
			line = formatChicago(ref)
		}
		out = append(out, line)
	}
	return out, nil
}

// surname extracts the primary author's sort key. Authors are stored
// "Surname, Initials", so everything before the first comma sorts.
func surname(ref models.ReferenceEntry) string {
	if len(ref.Authors) == 0 {
		return strings.ToLower(ref.Title)
	}
	first := ref.Authors[0]
	if idx := strings.Index(first, ","); idx > 0 {
		first = first[:idx]
	}
	return strings.ToLower(strings.TrimSpace(first))
}

// withPeriod terminates an author run with exactly one period; initials
// already end with one.
func withPeriod(authors string) string {
	return strings.TrimSuffix(authors, ".") + "."
}

func authorsAPA(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " & " + authors[1]
	default:
		return strings.Join(authors[:len(authors)-1], ", ") + ", & " + authors[len(authors)-1]
	}
}

func authorsMLA(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	default:
		return authors[0] + ", et al."
	}
}

func formatAPA(ref models.ReferenceEntry) string {
	var sb strings.Builder
	authors := authorsAPA(ref.Authors)

	switch ref.SourceType {
	case models.SourceJournal:
		fmt.Fprintf(&sb, "%s (%d). %s. ", authors, ref.Year, ref.Title)
		if ref.Journal != "" {
			sb.WriteString(ref.Journal)
			if ref.Volume != "" {
				sb.WriteString(", " + ref.Volume)
				if ref.Issue != "" {
					sb.WriteString("(" + ref.Issue + ")")
				}
			}
			if ref.Pages != "" {
				sb.WriteString(", " + ref.Pages)
			}
		}
		if ref.DOI != "" {
			sb.WriteString(". https://doi.org/" + ref.DOI)
		}
		sb.WriteString(".")
	case models.SourceBook:
		fmt.Fprintf(&sb, "%s (%d). %s", authors, ref.Year, ref.Title)
		if ref.Publisher != "" {
			sb.WriteString(". " + ref.Publisher)
		}
		sb.WriteString(".")
	case models.SourceWebsite:
		fmt.Fprintf(&sb, "%s (%d). %s. ", authors, ref.Year, ref.Title)
		if ref.URL != "" {
			sb.WriteString("Retrieved from " + ref.URL)
		}
	default:
		fmt.Fprintf(&sb, "%s (%d). %s.", authors, ref.Year, ref.Title)
	}
	return sb.String()
}

func formatIEEE(ref models.ReferenceEntry) string {
	var sb strings.Builder
	authors := strings.Join(ref.Authors, ", ")

	switch ref.SourceType {
	case models.SourceJournal:
		fmt.Fprintf(&sb, "%s, \"%s,\" ", authors, ref.Title)
		if ref.Journal != "" {
			sb.WriteString(ref.Journal)
			if ref.Volume != "" {
				sb.WriteString(", vol. " + ref.Volume)
			}
			if ref.Issue != "" {
				sb.WriteString(", no. " + ref.Issue)
			}
			if ref.Pages != "" {
				sb.WriteString(", pp. " + ref.Pages)
			}
		}
		fmt.Fprintf(&sb, ", %d.", ref.Year)
	case models.SourceBook:
		fmt.Fprintf(&sb, "%s, %s", authors, ref.Title)
		if ref.Publisher != "" {
			sb.WriteString(". " + ref.Publisher)
		}
		fmt.Fprintf(&sb, ", %d.", ref.Year)
	default:
		fmt.Fprintf(&sb, "%s, \"%s,\" %d.", authors, ref.Title, ref.Year)
	}
	return sb.String()
}

func formatMLA(ref models.ReferenceEntry) string {
	var sb strings.Builder
	authors := authorsMLA(ref.Authors)

	switch ref.SourceType {
	case models.SourceJournal:
		fmt.Fprintf(&sb, "%s \"%s.\" ", withPeriod(authors), ref.Title)
		if ref.Journal != "" {
			sb.WriteString(ref.Journal)
			if ref.Volume != "" {
				sb.WriteString(", vol. " + ref.Volume)
			}
			if ref.Issue != "" {
				sb.WriteString(", no. " + ref.Issue)
			}
			if ref.Pages != "" {
				sb.WriteString(", pp. " + ref.Pages)
			}
		}
		fmt.Fprintf(&sb, ", %d.", ref.Year)
	case models.SourceBook:
		fmt.Fprintf(&sb, "%s %s", withPeriod(authors), ref.Title)
		if ref.Publisher != "" {
			sb.WriteString(". " + ref.Publisher)
		}
		fmt.Fprintf(&sb, ", %d.", ref.Year)
	default:
		fmt.Fprintf(&sb, "%s \"%s.\" %d.", withPeriod(authors), ref.Title, ref.Year)
	}
	return sb.String()
}

func formatHarvard(ref models.ReferenceEntry) string {
	var sb strings.Builder
	authors := strings.Join(ref.Authors, ", ")

	fmt.Fprintf(&sb, "%s %d, '%s'", authors, ref.Year, ref.Title)
	switch {
	case ref.SourceType == models.SourceJournal && ref.Journal != "":
		sb.WriteString(", " + ref.Journal)
		if ref.Volume != "" {
			sb.WriteString(", vol. " + ref.Volume)
		}
		if ref.Pages != "" {
			sb.WriteString(", pp. " + ref.Pages)
		}
	case ref.SourceType == models.SourceBook && ref.Publisher != "":
		sb.WriteString(", " + ref.Publisher)
	}
	sb.WriteString(".")
	return sb.String()
}

func formatChicago(ref models.ReferenceEntry) string {
	var sb strings.Builder
	authors := strings.Join(ref.Authors, ", ")

	switch ref.SourceType {
	case models.SourceJournal:
		fmt.Fprintf(&sb, "%s \"%s.\" ", withPeriod(authors), ref.Title)
		if ref.Journal != "" {
			sb.WriteString(ref.Journal)
			if ref.Volume != "" {
				sb.WriteString(" " + ref.Volume)
			}
			if ref.Pages != "" {
				fmt.Fprintf(&sb, " (%d): %s", ref.Year, ref.Pages)
			} else {
				fmt.Fprintf(&sb, " (%d)", ref.Year)
			}
		}
		sb.WriteString(".")
	case models.SourceBook:
		fmt.Fprintf(&sb, "%s %s", withPeriod(authors), ref.Title)
		if ref.Publisher != "" {
			sb.WriteString(". " + ref.Publisher)
		}
		fmt.Fprintf(&sb, ", %d.", ref.Year)
	default:
		fmt.Fprintf(&sb, "%s \"%s.\" %d.", withPeriod(authors), ref.Title, ref.Year)
	}
	return sb.String()
}
