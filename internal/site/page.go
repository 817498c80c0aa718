package site

import (
	"html/template"
	"strings"
)

// pageData feeds the page template. Navbar, Content and Footer are
// pre-rendered fragments; Prefix makes shared asset references work at any
// directory depth.
type pageData struct {
	Title   string
	Prefix  string
	Navbar  template.HTML
	Content template.HTML
	Footer  template.HTML
}

// pageTemplate emits one self-contained HTML document. The MathJax block
// registers the four delimiter pairs the scanner recognizes, so protected
// spans restored into the HTML are typeset at page load.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="icon" type="image/png" href="{{.Prefix}}assets/logo.png" />
    <link rel="stylesheet" href="{{.Prefix}}assets/styles.css" type="text/css" />
    <script type="text/x-mathjax-config">
    MathJax.Hub.Config({
      tex2jax: {
        inlineMath: [['$','$'], ['\\(','\\)']],
        displayMath: [['$$','$$'], ['\\[','\\]']],
        processEscapes: true
      }
    });
    </script>
    <script src="{{.Prefix}}assets/tex-svg.js" id="MathJax-script"></script>
    <script>
    window.addEventListener('load', function() {
        if (typeof MathJax !== 'undefined' && MathJax.Hub) {
            MathJax.Hub.Queue(["Typeset", MathJax.Hub]);
        }
    });
    </script>
</head>
<body>
    {{.Navbar}}
    <div id="content">
        <div class="blogbody">
            {{.Content}}
        </div>
    </div>
    {{.Footer}}
</body>
</html>
`))

func assemblePage(data pageData) (string, error) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
