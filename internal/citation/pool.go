package citation

import (
	"fmt"
	"strings"

	"github.com/hailamir/academic-report-api/internal/models"
)

var poolAuthors = [][]string{
	{"Smith, J.A.", "Johnson, M.B."},
	{"Brown, K.L."},
	{"Davis, R.C.", "Wilson, A.D.", "Miller, S.E."},
	{"Anderson, P.F.", "Taylor, L.M."},
	{"Thompson, C.R."},
	{"Garcia, M.A.", "Rodriguez, J.L."},
	{"Lee, H.K.", "Kim, S.J."},
	{"White, D.B.", "Black, T.G.", "Green, R.H."},
}

var poolTitleForms = []string{
	"Advanced Methodologies in %s",
	"Contemporary Approaches to %s Analysis",
	"Innovative Frameworks for %s Research",
	"Theoretical Foundations of %s",
	"Empirical Studies in %s",
	"Modern Perspectives on %s",
	"Computational Methods in %s",
	"Interdisciplinary Approaches to %s",
}

var poolJournals = []string{
	"Journal of Academic Research",
	"International Review of Studies",
	"Research Quarterly",
	"Academic Perspectives",
	"Contemporary Research Journal",
	"International Journal of Analysis",
	"Research Methods Review",
	"Academic Innovation Journal",
}

// SamplePool builds count synthetic journal references themed on topic.
// Entries are fully derived from the index and baseYear so repeated calls
// yield identical output.
func SamplePool(topic string, count, baseYear int) []models.ReferenceEntry {
	if count <= 0 {
		count = 8
	}
	titled := titleCase(topic)

	refs := make([]models.ReferenceEntry, 0, count)
	for i := 0; i < count; i++ {
		refs = append(refs, models.ReferenceEntry{
			Title:      fmt.Sprintf(poolTitleForms[i%len(poolTitleForms)], titled),
			Authors:    poolAuthors[i%len(poolAuthors)],
			Year:       baseYear - (i % 10),
			SourceType: models.SourceJournal,
			Journal:    poolJournals[i%len(poolJournals)],
			Volume:     fmt.Sprintf("%d", 12+i*3),
			Issue:      fmt.Sprintf("%d", 1+i%4),
			Pages:      fmt.Sprintf("%d-%d", 10+i*15, 30+i*15),
		})
	}
	return refs
}

func titleCase(s string) string {
	parts := strings.Fields(strings.ToLower(s))
	for i, p := range parts {
		r := []rune(p)
		if len(r) > 0 {
			parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(parts, " ")
}
