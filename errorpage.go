package main

// Error responses.

import (
	"io"
	"log"
	"os"
)

var errorTemplate = templateFromString(`
<!doctype html>
<html>
  <head>
    <title>{{.}}</title>
  </head>
  <body>
    <h1>{{.}}</h1>
  </body>
</html>
`)

// handleError responds to req with an error page for status: the configured
// Not Found page for Not Found responses, and a generated page naming the
// status for everything else. A Not Found response whose page cannot be
// opened goes out with no body at all.
func (c *config) handleError(req *Request, status Status) Status {
	log.Println("HTTP error:", status)

	if err := respondHeader(req.Conn, status, "text/html"); err != nil {
		log.Println("Error writing response header:", err)
		return status
	}

	if status == StatusNotFound {
		page, err := os.Open(c.NotFoundPage)
		if err != nil {
			log.Println("Unable to open Not Found page:", err)
			return status
		}
		defer page.Close()
		if _, err := io.Copy(req.Conn, page); err != nil {
			log.Println("Error sending Not Found page:", err)
		}
		return status
	}

	if err := errorTemplate.Execute(req.Conn, status.String()); err != nil {
		log.Println("Error filling in error page template:", err)
	}
	return status
}
