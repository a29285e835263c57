package models

// HeatmapGridSize is the number of cells per heatmap axis.
const HeatmapGridSize = 20

// Heatmap aggregates clicks on one page into a grid.
// Cells[row][col] counts clicks whose y falls in row and x falls in col.
type Heatmap struct {
	SiteID      string    `json:"site_id"`
	Path        string    `json:"path"`
	Range       DateRange `json:"range"`
	GridSize    int       `json:"grid_size"`
	Cells       [][]int64 `json:"cells"`
	TotalClicks int64     `json:"total_clicks"`
	MaxCell     int64     `json:"max_cell"`
}

// Click is a recorded click position in normalized page coordinates.
type Click struct {
	X float64
	Y float64
}

// HeatmapParams are the parameters of a heatmap request.
type HeatmapParams struct {
	SiteID string
	Path   string
	Period Period
	From   string
	To     string
}
