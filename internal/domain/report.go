package domain

import (
	"fmt"
	"strings"
	"time"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
	"htmlreport.dev/pkg/htmlreport/pkg/capture"
)

// DefaultTitle is used when a report has no title.
const DefaultTitle = "Unit Test Report"

// DefaultEntryModule is the module whose groups are shown unqualified.
const DefaultEntryModule = "main"

const startTimeLayout = "2006-01-02 15:04:05"

// ReportInput carries everything the report is built from.
type ReportInput struct {
	Title       string
	Description string
	Generator   string
	EntryModule string
	Start       time.Time
	Stop        time.Time
	Records     []m.TestRecord
	Summary     m.RunSummary
}

type testGroup struct {
	group   m.Group
	records []m.TestRecord
}

// BuildReport groups records in first-seen order, numbers groups and tests,
// and resolves every name, count, style and row identifier of the report.
// It never fails: absent or unexpected values degrade to defaults.
func BuildReport(in ReportInput) m.Report {
	title := in.Title
	if title == "" {
		title = DefaultTitle
	}

	entry := in.EntryModule
	if entry == "" {
		entry = DefaultEntryModule
	}

	report := m.Report{
		Title:       title,
		Description: in.Description,
		Generator:   in.Generator,
		Attributes:  ReportAttributes(in.Start, in.Stop, in.Summary),
		Totals:      in.Summary,
	}

	var allTargets, passedTargets []string

	for gi, group := range groupRecords(in.Records) {
		row := buildGroupRow(gi+1, group, entry)

		for _, test := range row.Tests {
			allTargets = append(allTargets, rowTarget(test.RowID))

			if test.Status == m.Passed.String() {
				passedTargets = append(passedTargets, rowTarget(test.RowID))
			}
		}

		report.Groups = append(report.Groups, row)
	}

	report.AllTestTargets = strings.Join(allTargets, ",")
	report.PassedTestTargets = strings.Join(passedTargets, ",")

	return report
}

// ReportAttributes computes the heading values. Start time is truncated to
// whole seconds; a missing or inverted time span renders as "0s".
func ReportAttributes(start, stop time.Time, summary m.RunSummary) m.ReportAttributes {
	startTime := ""
	if !start.IsZero() {
		startTime = start.Truncate(time.Second).Format(startTimeLayout)
	}

	duration := time.Duration(0)
	if !start.IsZero() && !stop.IsZero() && stop.After(start) {
		duration = stop.Sub(start)
	}

	return m.ReportAttributes{
		StartTime: startTime,
		Duration:  duration.String(),
		Status:    summary.Status(),
	}
}

// RowID returns the row identifier of a test: "p" for passes and "f" for
// everything else, then the 1-based group and within-group indexes.
func RowID(outcome m.Outcome, groupIndex, testIndex int) string {
	return fmt.Sprintf("%s-t%d-%d", outcome.RowPrefix(), groupIndex, testIndex)
}

func rowTarget(rowID string) string {
	return "#tr_" + rowID
}

func groupRecords(records []m.TestRecord) []testGroup {
	index := make(map[string]int)

	var groups []testGroup

	for _, record := range records {
		key := record.Test.Group.Key()

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, testGroup{group: record.Test.Group})
		}

		groups[i].records = append(groups[i].records, record)
	}

	return groups
}

func countOutcomes(records []m.TestRecord) m.RunSummary {
	var counts m.RunSummary

	for _, record := range records {
		switch record.Outcome {
		case m.Passed:
			counts.Success++
		case m.Failed:
			counts.Failure++
		default:
			counts.Error++
		}
	}

	return counts
}

// groupStyle does not distinguish failures from errors.
func groupStyle(counts m.RunSummary) string {
	if counts.Failed() {
		return "danger"
	}

	return "success"
}

func buildGroupRow(groupIndex int, group testGroup, entry string) m.GroupRow {
	counts := countOutcomes(group.records)
	row := m.GroupRow{
		Index:  groupIndex,
		Name:   group.group.DisplayName(entry),
		Style:  groupStyle(counts),
		Counts: counts,
		Tests:  make([]m.TestRow, 0, len(group.records)),
	}

	var passed []string

	for ti, record := range group.records {
		test := buildTestRow(groupIndex, ti+1, record)
		if record.Outcome == m.Passed {
			passed = append(passed, rowTarget(test.RowID))
		}

		row.Tests = append(row.Tests, test)
	}

	row.PassedTargets = strings.Join(passed, ",")

	return row
}

func buildTestRow(groupIndex, testIndex int, record m.TestRecord) m.TestRow {
	name := record.Test.ShortName()
	if desc := m.FirstLine(record.Test.Description); desc != "" {
		name = name + ": " + desc
	}

	output := capture.NormalizeString(record.Output) + capture.NormalizeString(record.ErrorText)

	row := m.TestRow{
		RowID:     RowID(record.Outcome, groupIndex, testIndex),
		Name:      name,
		Status:    record.Outcome.String(),
		Style:     "text-danger",
		RowClass:  "none",
		Output:    output,
		HasOutput: output != "",
	}

	if record.Outcome == m.Passed {
		row.Style = "none"
		row.RowClass = "collapse"
	}

	return row
}
