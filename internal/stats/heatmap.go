package stats

import "github.com/MKhiriev/go-pixel-analytics/models"

// MaxHeatmapClicks bounds the clicks read for one heatmap.
const MaxHeatmapClicks = 50_000

// BuildHeatmap counts clicks into a size×size grid. A coordinate of exactly
// 1 falls into the last cell.
func BuildHeatmap(clicks []models.Click, size int) ([][]int64, int64, int64) {
	cells := make([][]int64, size)
	for i := range cells {
		cells[i] = make([]int64, size)
	}

	var total, maxCell int64
	for _, c := range clicks {
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 {
			continue
		}
		row, col := cell(c.Y, size), cell(c.X, size)
		cells[row][col]++
		total++
		if cells[row][col] > maxCell {
			maxCell = cells[row][col]
		}
	}
	return cells, total, maxCell
}

func cell(v float64, size int) int {
	i := int(v * float64(size))
	if i >= size {
		i = size - 1
	}
	return i
}
