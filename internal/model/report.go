package model

// ReportAttributes are the heading values computed once at report time.
type ReportAttributes struct {
	StartTime string
	Duration  string
	Status    string
}

// Report is the fully resolved view of a run, ready for templating.
type Report struct {
	Title             string
	Description       string
	Generator         string
	Attributes        ReportAttributes
	Groups            []GroupRow
	Totals            RunSummary
	AllTestTargets    string // "#tr_<id>,..." for every test
	PassedTestTargets string // "#tr_<id>,..." for passed tests only
}

// GroupRow is one summary table row plus the detail rows of its tests.
type GroupRow struct {
	Index         int
	Name          string
	Style         string // "success" or "danger"
	Counts        RunSummary
	PassedTargets string
	Tests         []TestRow
}

// TestRow is one per-test detail row.
type TestRow struct {
	RowID     string
	Name      string
	Status    string
	Style     string // "text-danger" or "none"
	RowClass  string // "collapse" or "none"
	Output    string
	HasOutput bool
}

// Path represents a file system path.
type Path string
