package profile

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .PersonalInfo.Name}}{{.PersonalInfo.Name}}{{else}}Resume{{end}}</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; color: #222; }
h1 { margin-bottom: 0.2rem; }
h2 { border-bottom: 1px solid #999; text-transform: uppercase; font-size: 1rem; letter-spacing: 0.05em; }
.contact { color: #555; margin-bottom: 1.5rem; }
.entry { margin-bottom: 0.8rem; }
.dates { color: #777; font-style: italic; }
ul { margin: 0.3rem 0; }
</style>
</head>
<body>
{{if .PersonalInfo.Name}}<h1>{{.PersonalInfo.Name}}</h1>{{end}}
<div class="contact">
{{with .PersonalInfo}}{{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}{{if .LinkedIn}} &middot; {{.LinkedIn}}{{end}}{{if .GitHub}} &middot; {{.GitHub}}{{end}}{{if .Website}} &middot; {{.Website}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}{{end}}
</div>
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
<strong>{{.Title}}</strong>{{if .Company}}, {{.Company}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}
{{if or .StartYear .EndYear}}<span class="dates">({{.StartYear}} &ndash; {{.EndYear}})</span>{{end}}
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry"><strong>{{.Degree}}</strong>{{if .Major}} in {{.Major}}{{end}}{{if .School}}, {{.School}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}{{if .Year}} <span class="dates">({{.Year}})</span>{{end}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
{{end}}
{{end}}
{{if .Skills}}
<h2>Skills</h2>
<div class="entry">{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</div>
{{end}}
{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry"><strong>{{.Name}}</strong>{{if or .StartDate .EndDate}} <span class="dates">({{.StartDate}} &ndash; {{.EndDate}})</span>{{end}}{{if .Status}} [{{.Status}}]{{end}}{{if .Description}}: {{.Description}}{{end}}
{{if .Technologies}}<ul><li>Technologies: {{range $i, $t := .Technologies}}{{if $i}}, {{end}}{{$t}}{{end}}</li></ul>{{end}}
{{if .URL}}<div><a href="{{.URL}}">{{.URL}}</a></div>{{end}}
</div>
{{end}}
{{end}}
{{if .Certifications}}
<h2>Certifications</h2>
<ul>{{range .Certifications}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</body>
</html>
`))

// Render writes the profile as a standalone HTML page.
func Render(w io.Writer, p Profile) error {
	return pageTemplate.Execute(w, p)
}
