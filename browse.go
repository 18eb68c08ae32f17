package main

// Directory listings.

import (
	"html/template"
	"log"
	"os"
	"sort"
	"strings"
)

func templateFromString(s string) *template.Template {
	t, err := template.New("").Parse(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return t
}

type browseEntry struct {
	Link  string
	Name  string
	Image bool
}

type browseData struct {
	URI     string
	Entries []browseEntry
}

var browseTemplate = templateFromString(`
<!doctype html>
<html>
  <head>
    <title>Index of {{.URI}}</title>
  </head>
  <body>
    <h1>Index of {{.URI}}</h1>
    <ul>
      {{- range .Entries}}
      <li>
        {{- if .Image}}
        <img src="{{.Link}}" width="50">
        {{- end}}
        <a class="btn btn-primary" href="{{.Link}}">{{.Name}}</a>
      </li>
      {{- end}}
    </ul>
  </body>
</html>
`)

// handleBrowse responds to req with an HTML listing of the directory at its
// path. The listing includes a parent-directory entry, and thumbnails for
// entries that look like images.
func (c *config) handleBrowse(req *Request) Status {
	dir, err := os.ReadDir(req.Path)
	if err != nil {
		log.Println("Unable to read directory:", err)
		return c.handleError(req, StatusNotFound)
	}

	names := make([]string, 0, len(dir)+1)
	names = append(names, "..")
	for _, ent := range dir {
		names = append(names, ent.Name())
	}
	sort.Strings(names)

	separator := "/"
	if strings.HasSuffix(req.URI, "/") {
		separator = ""
	}

	data := browseData{URI: req.URI}
	for _, name := range names {
		data.Entries = append(data.Entries, browseEntry{
			Link:  req.URI + separator + name,
			Name:  name,
			Image: strings.HasPrefix(c.determineMimetype(name), "image/"),
		})
	}

	if err := respondHeader(req.Conn, StatusOK, "text/html"); err != nil {
		log.Println("Error writing directory listing:", err)
		return StatusInternalServerError
	}
	if err := browseTemplate.Execute(req.Conn, data); err != nil {
		log.Println("Error filling in directory listing template:", err)
		return StatusInternalServerError
	}

	return StatusOK
}
