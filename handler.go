package main

// Dispatching HTTP requests to the appropriate handlers.

import (
	"fmt"
	"io"
	"log"
	"os"
)

// handleRequest reads one HTTP request from conn, figures out what kind of
// resource it is asking for, and responds to it. It returns the HTTP status
// that was sent.
func (c *config) handleRequest(conn *Connection) Status {
	req, err := parseRequest(conn)
	if err != nil {
		log.Println("Error parsing request:", err)
		req = &Request{Conn: conn}
		status := c.handleError(req, StatusBadRequest)
		c.logAccess(req, status)
		return status
	}

	path, ok := resolveRequestPath(c.Root, req.URI)
	if !ok {
		status := c.handleError(req, StatusNotFound)
		c.logAccess(req, status)
		return status
	}
	req.Path = path

	status := c.dispatch(req)
	c.logAccess(req, status)
	return status
}

// dispatch sends req to the right handler, according to what kind of file
// its path points to: directories get a listing, executable files are run
// as CGI scripts, and other readable files are served as they are.
func (c *config) dispatch(req *Request) Status {
	info, err := os.Stat(req.Path)
	if err != nil {
		log.Println("Unable to stat path:", err)
		return c.handleError(req, StatusInternalServerError)
	}

	mode := info.Mode()
	switch {
	case mode.IsDir():
		return c.handleBrowse(req)
	case mode&os.ModeType == 0 && mode.Perm()&0100 != 0:
		return c.handleCGI(req)
	case mode&os.ModeType == 0 && mode.Perm()&0400 != 0:
		return c.handleFile(req)
	default:
		return c.handleError(req, StatusInternalServerError)
	}
}

// respondHeader writes the HTTP/1.0 response header for status to w: the
// status line, a Content-Type header, any extra headers, and the blank line
// that separates the header from the body.
func respondHeader(w io.Writer, status Status, contentType string, extra ...Header) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.0 %v\r\nContent-Type: %s\r\n", status, contentType); err != nil {
		return err
	}
	for _, h := range extra {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}
