package views

// OutputKind identifies one of the files written by the CLI.
type OutputKind int

const (
	OutputManifest OutputKind = iota
	OutputMotion
	OutputSettings
)

var outputNames = map[OutputKind]string{
	OutputManifest: "manifest",
	OutputMotion:   "motion",
	OutputSettings: "settings",
}

func (k OutputKind) String() string {
	if n, ok := outputNames[k]; ok {
		return n
	}
	return "unknown"
}

// SchemaColumns is the canonical column list of each CSV output. Header
// rows come from the models' CSVHeader methods; tests check they agree.
var SchemaColumns = map[OutputKind][]string{
	OutputManifest: {"sequence", "style", "images", "calib", "depth"},
	OutputMotion:   {"sequence", "step", "frame", "value"},
}
