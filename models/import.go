package models

// ImportedPageviews is one aggregated day of pageviews imported from
// Google Analytics. Day is "YYYY-MM-DD".
type ImportedPageviews struct {
	SiteID    string `json:"site_id"`
	Day       string `json:"day"`
	Path      string `json:"path"`
	Pageviews int64  `json:"pageviews"`
	Visitors  int64  `json:"visitors"`
}

// ImportResult summarises a CSV import.
type ImportResult struct {
	RowsRead     int      `json:"rows_read"`
	RowsImported int      `json:"rows_imported"`
	RowsSkipped  int      `json:"rows_skipped"`
	Errors       []string `json:"errors,omitempty"`
}
