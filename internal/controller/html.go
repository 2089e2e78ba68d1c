package controller

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"

	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// xmlProlog precedes the template output; html/template would escape it.
const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// reportTemplate is an XHTML 1.0 Strict document styled with Bootstrap 3.
// Every interpolated value goes through html/template escaping.
const reportTemplate = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>{{.Title}}</title>
    <meta name="generator" content="{{.Generator}}"/>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>
    {{template "stylesheet"}}
</head>
<body>
    {{template "heading" .}}
    {{template "report" .}}
    {{template "ending"}}
</body>
</html>
{{define "stylesheet"}}
<link href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-BVYiiSIFeK1dGmJRAkycuHAHRg32OmUcww7on3RYdg4Va+PmSTsz/K68vbdEjh4u" crossorigin="anonymous"/>
<script src="https://ajax.googleapis.com/ajax/libs/jquery/3.2.1/jquery.min.js"></script>
<script src="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/js/bootstrap.min.js" integrity="sha384-Tc5IQib027qvyjSMfHjOMaLkfuWVxZxUPnCJA7l2mCWNIpG9mGCD8wGNIcPD7Txa" crossorigin="anonymous"></script>
{{end}}
{{define "heading"}}
<div class="container-fluid">
    <div>
        <h1>{{.Title}}</h1>
        <p><strong>Start Time:</strong> {{.Attributes.StartTime}}</p>
        <p><strong>Duration:</strong> {{.Attributes.Duration}}</p>
        <p><strong>Status:</strong> {{.Attributes.Status}}</p>
        <p><strong>Test Description: </strong>{{.Description}}</p>
    </div>
{{end}}
{{define "report"}}
    <p id='show_detail_line'>
        <button type="button" class="btn btn-info" data-toggle="collapse" data-target="{{.AllTestTargets}}">Toggle All</button>
        <button type="button" class="btn btn-info" data-toggle="collapse" data-target="{{.PassedTestTargets}}">Toggle Failed</button>
    </p>
    <table class="table table-striped">
        <colgroup>
            <col align='left' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
        </colgroup>
        <thead class="thead-inverse">
            <tr id='header_row'>
                <th class="col-md-7">Test Group/Test case</th>
                <th class="col-md-1">Count</th>
                <th class="col-md-1">Pass</th>
                <th class="col-md-1">Fail</th>
                <th class="col-md-1">Error</th>
                <th class="col-md-1">View</th>
            </tr>
        </thead>
        {{- range .Groups}}
        {{template "group" .}}
        {{- range .Tests}}
        {{template "test" .}}
        {{- end}}
        {{- end}}
        <tr id='total_row'>
            <th class="col-md-7">Total</th>
            <th class="col-md-1">{{.Totals.Total}}</th>
            <th class="col-md-1">{{.Totals.Success}}</th>
            <th class="col-md-1">{{.Totals.Failure}}</th>
            <th class="col-md-1">{{.Totals.Error}}</th>
            <th class="col-md-1">&nbsp;</th>
        </tr>
    </table>
{{end}}
{{define "group"}}
    <tr class='{{.Style}}'>
        <th>{{.Name}}</th>
        <td>{{.Counts.Total}}</td>
        <td>{{.Counts.Success}}</td>
        <td>{{.Counts.Failure}}</td>
        <td>{{.Counts.Error}}</td>
        <td><button type="button" class="btn btn-info" data-toggle="collapse" data-target="{{.PassedTargets}}">Detail</button></td>
    </tr>
{{end}}
{{define "test"}}
{{- if .HasOutput}}
    <tr id='tr_{{.RowID}}' class='{{.RowClass}}'>
        <td class='{{.Style}}'><div class='testcase'>{{.Name}}</div></td>
        <td colspan='5' align='center'>
            <button type="button" class="btn btn-info btn-danger" data-toggle="collapse" data-target="#div_{{.RowID}}">{{.Status}}</button>
            <div id='div_{{.RowID}}' class="collapse">
                <pre>
                    <div align="left" style="position: relative;">
                        {{.RowID}}:<br/><br/>{{.Output}}
                    </div>
                </pre>
            </div>
        </td>
    </tr>
{{- else}}
    <tr id='tr_{{.RowID}}' class='{{.RowClass}}'>
        <td class='{{.Style}}'><div>{{.Name}}</div></td>
        <td colspan='5' align='center'>{{.Status}}</td>
    </tr>
{{- end}}
{{end}}
{{define "ending"}}
    <div id='ending'>&nbsp;</div>
</div>
{{end}}`

var parsedReportTemplate = template.Must(template.New("report.html").Parse(reportTemplate))

// HTMLRenderer turns a resolved report into an XHTML document.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns a renderer for the built-in report template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: parsedReportTemplate}
}

// Render returns the UTF-8 encoded document. The template is executed into
// a buffer so a failure never leaves a partial document behind.
func (h *HTMLRenderer) Render(report m.Report) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xmlProlog)

	if err := h.tmpl.Execute(&buf, report); err != nil {
		slog.Error("failed to render report", "error", err)
		return nil, fmt.Errorf("render report: %w", err)
	}

	return buf.Bytes(), nil
}
