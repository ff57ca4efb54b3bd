// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package page

import (
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/voter-browser/table"
)

var funcMap = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"columns": func() []string { return table.Columns[:] },
	"add":     func(a, b int) int { return a + b },
	"cssColor": func(c interface{ String() string }) template.CSS {
		return template.CSS(c.String())
	},
}

var pageTmpl = template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + tmplIndex))

// Render writes the browsing page for v.
func Render(w io.Writer, v *View) error {
	return pageTmpl.ExecuteTemplate(w, "base", v)
}

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Voter Browser</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f6f8fa;color:#24292f;font-size:13px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#fff;border-bottom:1px solid #d0d7de;padding:8px 16px;display:flex;gap:16px;align-items:center}
nav .brand{font-weight:700;font-size:15px}
main{padding:16px}
h2{font-size:12px;font-weight:600;color:#57606a;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.section{background:#fff;border:1px solid #d0d7de;border-radius:6px;margin-bottom:16px;overflow:auto}
.toolbar{display:flex;gap:12px;align-items:center;flex-wrap:wrap;padding:8px 12px;border-bottom:1px solid #d0d7de}
.toolbar form{margin-left:auto}
.toolbar input[type=search]{padding:3px 6px;border:1px solid #d0d7de;border-radius:4px}
.len a,.exp a,.exp button{font-size:11px;padding:2px 8px;border:1px solid #d0d7de;border-radius:4px;color:#57606a;background:#fff;cursor:pointer}
.len a.active{background:#0969da;border-color:#0969da;color:#fff}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;color:#57606a;font-weight:600;font-size:11px;white-space:nowrap}
td{padding:5px 10px;border-bottom:1px solid #eaeef2;vertical-align:top}
tr:hover td{background:#f6f8fa}
.empty{padding:16px;text-align:center;color:#57606a}
.footer{display:flex;justify-content:space-between;padding:8px 12px;color:#57606a}
.pager a,.pager span{margin-left:8px}
.dim{color:#8c959f}
.charts{display:grid;grid-template-columns:repeat(auto-fill,minmax(480px,1fr));gap:16px}
.chart{padding:8px 12px}
.chart ul{list-style:none;display:flex;flex-wrap:wrap;gap:4px 12px;font-size:11px;color:#57606a}
.swatch{display:inline-block;width:10px;height:10px;margin-right:4px;border-radius:2px;vertical-align:middle}
</style>
</head>
<body>
<nav><span class="brand">Voter Browser</span></nav>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}
`

const tmplIndex = `
{{define "content"}}
<h2>Voters</h2>
<div class="section" id="voterTable">
<div class="toolbar">
  <span class="len">Show
  {{range $n := .PageLengths}}<a href="{{$.LengthURL $n}}"{{if eq $n $.Table.Request.Length}} class="active"{{end}}>{{$n}}</a> {{end}}
  entries</span>
  <span class="exp">
    <button type="button" data-src="{{.ExportURL "copy"}}" onclick="copyRows(this)">Copy</button>
    <a href="{{.ExportURL "csv"}}">CSV</a>
    <a href="{{.ExportURL "xlsx"}}">Excel</a>
  </span>
  <form method="get" action="/">
    {{range $k, $v := .Hidden}}<input type="hidden" name="{{$k}}" value="{{$v}}">{{end}}
    <label>Search: <input type="search" name="{{.SearchParam}}" value="{{.Table.Request.Search}}"></label>
  </form>
</div>
<table>
<thead><tr>
{{range $i, $c := columns}}<th><a href="{{$.SortURL $i}}">{{$c}}</a> {{$.SortMark $i}}</th>{{end}}
</tr></thead>
<tbody>
{{range .Table.Rows}}<tr>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{else}}<tr><td colspan="{{len columns}}" class="empty">No matching records found</td></tr>
{{end}}
</tbody>
</table>
<div class="footer">
  <span>{{.Table.Info}}</span>
  <span class="pager">
    {{if .Table.HasPrev}}<a href="{{.PrevURL}}">Previous</a>{{else}}<span class="dim">Previous</span>{{end}}
    <span>Page {{comma .PageNumber}} of {{comma .PageCount}}</span>
    {{if .Table.HasNext}}<a href="{{.NextURL}}">Next</a>{{else}}<span class="dim">Next</span>{{end}}
  </span>
</div>
</div>

<h2>Statistics</h2>
<div class="charts">
{{range .Charts}}
<div class="section chart" id="{{.MountID}}">
  {{if .SVG}}{{.SVG}}{{else}}<p class="empty">{{.Label}}: no data</p>{{end}}
  <ul>{{range .Bars}}<li><span class="swatch" style="background:{{cssColor .Color}}"></span>{{.Label}} <span class="dim">{{.Tooltip}}</span></li>{{end}}</ul>
</div>
{{end}}
</div>

<script>
function copyRows(btn) {
  fetch(btn.dataset.src)
    .then(function (r) { return r.text(); })
    .then(function (t) { return navigator.clipboard.writeText(t); })
    .then(function () { btn.textContent = "Copied"; })
    .catch(function (e) { console.error("copy failed", e); });
}
</script>
{{end}}
`
