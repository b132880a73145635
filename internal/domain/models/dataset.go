package models

// FileStats counts what happened to the data lines of one kind of input file.
// The header line is never counted.
type FileStats struct {
	Files   int `json:"files"`
	Parsed  int `json:"parsed"`
	Skipped int `json:"skipped"`
}

// Add merges o into s.
func (s *FileStats) Add(o FileStats) {
	s.Files += o.Files
	s.Parsed += o.Parsed
	s.Skipped += o.Skipped
}

// LoadStats groups FileStats per input kind.
type LoadStats struct {
	Sellers  FileStats `json:"sellers"`
	Products FileStats `json:"products"`
	Sales    FileStats `json:"sales"`
}

// Dataset is the raw input of one aggregation pass: reference data plus every
// parsed sale, in file order.
type Dataset struct {
	Sellers  []Seller
	Products []Product
	Sales    []Sale
	Stats    LoadStats
}

// AggregateStats describes one aggregation pass.
//
// A sale whose seller is unknown is counted in DroppedUnknownSeller even if
// its product is unknown too.
type AggregateStats struct {
	Applied               int `json:"applied"`
	QuantityApplied       int `json:"quantity_applied"`
	DroppedUnknownSeller  int `json:"dropped_unknown_seller"`
	DroppedUnknownProduct int `json:"dropped_unknown_product"`
}

// Dropped is the number of sales that did not resolve.
func (s AggregateStats) Dropped() int {
	return s.DroppedUnknownSeller + s.DroppedUnknownProduct
}

// Result is the state after aggregation and summarization. Sellers and
// Products point at the records mutated in place, in reference-file order.
type Result struct {
	Sellers   []*Seller
	Products  []*Product
	Summaries []ProductSummary
	Load      LoadStats
	Aggregate AggregateStats
}
