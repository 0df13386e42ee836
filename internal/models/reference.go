package models

// ReferenceSourceType distinguishes bibliographic record categories.
type ReferenceSourceType string

const (
	SourceJournal ReferenceSourceType = "journal"
	SourceBook    ReferenceSourceType = "book"
	SourceWebsite ReferenceSourceType = "website"
)

// ReferenceEntry is one bibliographic record consumed by the citation
// formatter. Entries are synthetic per run, not user supplied.
type ReferenceEntry struct {
	Title      string              `json:"title"`
	Authors    []string            `json:"authors"`
	Year       int                 `json:"year"`
	SourceType ReferenceSourceType `json:"source_type"`
	Journal    string              `json:"journal,omitempty"`
	Publisher  string              `json:"publisher,omitempty"`
	URL        string              `json:"url,omitempty"`
	Volume     string              `json:"volume,omitempty"`
	Issue      string              `json:"issue,omitempty"`
	Pages      string              `json:"pages,omitempty"`
	DOI        string              `json:"doi,omitempty"`
}
