package nav

import (
	"html/template"
	"strings"
)

// navTemplate renders the navigation block. Structure and classes follow
// the site's stylesheet: a logo-linked root entry first, then page links,
// external links and hover dropdowns.
var navTemplate = template.Must(template.New("nav").Parse(`<nav class="site-nav">
<ul>
  <li><a href="{{.Logo.Href}}" class="nav-link logo-link{{if .Logo.Active}} active{{end}}"><img src="{{.Prefix}}assets/logo-wide.png" alt="Logo">{{.Logo.Text}}</a></li>
{{- range .Items}}
{{- if .IsDropdown}}
  <li class="dropdown">
    <a>{{.Name}}</a>
    <div class="dropdown-content">
{{- range .Links}}
      <a href="{{.Href}}"{{if .NewTab}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Text}}</a>
{{- end}}
    </div>
  </li>
{{- else}}
  <li><a href="{{.Link.Href}}" class="nav-link{{if .Link.Active}} active{{end}}"{{if .Link.NewTab}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Link.Text}}</a></li>
{{- end}}
{{- end}}
</ul>
</nav>
`))

// RenderHTML renders the page navigation view to an HTML fragment.
func (p PageNav) RenderHTML() (template.HTML, error) {
	var b strings.Builder
	if err := navTemplate.Execute(&b, p); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
