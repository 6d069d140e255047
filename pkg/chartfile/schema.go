// pkg/chartfile/schema.go
package chartfile

// Document is a size-chart file as exchanged with merchandising: the chart
// itself plus versioning metadata.
type Document struct {
	Version     string      `json:"version"`
	LastUpdated string      `json:"lastUpdated"`
	Sizes       []SizeEntry `json:"sizes"`
}

// SizeEntry is one chart row. Field names mirror the catalog store columns.
type SizeEntry struct {
	Name     string  `json:"name"`
	ChestMin float64 `json:"chest_min"`
	ChestMax float64 `json:"chest_max"`
	WaistMin float64 `json:"waist_min"`
	WaistMax float64 `json:"waist_max"`
}
