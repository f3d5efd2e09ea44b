package models

// SequenceEntry is one resolved sequence as written to the manifest CSV.
type SequenceEntry struct {
	Sequence string   `json:"sequence"`
	Raw      bool     `json:"raw"`
	Images   string   `json:"images"`
	Calib    []string `json:"calib"` // joined with ';' in CSV
	Depth    string   `json:"depth"`
}

// Style names the KITTI layout the paths were built for.
func (e *SequenceEntry) Style() string {
	if e.Raw {
		return "raw"
	}
	return "object"
}

// CSVHeader returns the ordered column names for the manifest CSV.
func (SequenceEntry) CSVHeader() []string {
	return []string{"sequence", "style", "images", "calib", "depth"}
}

// CSVRow serialises one entry into a CSV-compatible string slice.
func (e *SequenceEntry) CSVRow() []string {
	return []string{
		e.Sequence,
		e.Style(),
		e.Images,
		joinPaths(e.Calib),
		e.Depth,
	}
}
