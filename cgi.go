package main

// Running CGI scripts.

import (
	"log"
	"os"
	"os/exec"
)

// cgiHeaders lists the request headers that are passed to CGI scripts, and
// the environment variables they are passed in.
var cgiHeaders = []struct{ header, env string }{
	{"Host", "HTTP_HOST"},
	{"User-Agent", "HTTP_USER_AGENT"},
	{"Accept", "HTTP_ACCEPT"},
	{"Accept-Language", "HTTP_ACCEPT_LANGUAGE"},
	{"Accept-Encoding", "HTTP_ACCEPT_ENCODING"},
	{"Connection", "HTTP_CONNECTION"},
}

// handleCGI runs the executable at req's path and sends its output to the
// client. The script is responsible for generating the entire response,
// status line and headers included.
func (c *config) handleCGI(req *Request) Status {
	cmd := exec.Command(req.Path)
	cmd.Env = append(os.Environ(),
		"DOCUMENT_ROOT="+c.Root,
		"QUERY_STRING="+req.Query,
		"REMOTE_ADDR="+req.Conn.Host,
		"REMOTE_PORT="+req.Conn.Port,
		"REQUEST_METHOD="+req.Method,
		"REQUEST_URI="+req.URI,
		"SCRIPT_FILENAME="+req.Path,
		"SERVER_PORT="+c.Port,
	)
	for _, h := range cgiHeaders {
		if v := req.GetHeader(h.header); v != "" {
			cmd.Env = append(cmd.Env, h.env+"="+v)
		}
	}
	cmd.Stdout = req.Conn
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		log.Println("Unable to run CGI script:", err)
		return c.handleError(req, StatusInternalServerError)
	}
	if err := cmd.Wait(); err != nil {
		// The script's output has already been copied to the client, so
		// a failure here is too late to affect the response.
		log.Println("CGI script failed:", err)
	}

	return StatusOK
}
