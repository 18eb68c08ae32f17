package main

// Reading and parsing HTTP/1.0 requests.

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// A Connection is one accepted client socket, wrapped with buffered streams,
// plus the peer's host and port strings. It is owned by a single
// request-handling flow and must be closed on every exit path.
type Connection struct {
	rwc  io.ReadWriteCloser
	r    *bufio.Reader
	w    *bufio.Writer
	Host string
	Port string
}

func newConnection(rwc io.ReadWriteCloser, host, port string) *Connection {
	return &Connection{
		rwc:  rwc,
		r:    bufio.NewReader(rwc),
		w:    bufio.NewWriter(rwc),
		Host: host,
		Port: port,
	}
}

func (c *Connection) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// Close flushes any buffered response data and releases the socket.
func (c *Connection) Close() error {
	c.w.Flush()
	return c.rwc.Close()
}

// readLine reads one line from the connection, reassembling it if it is
// longer than the buffer (like readLineSlice in net/textproto).
func (c *Connection) readLine() (string, error) {
	var line []byte
	for {
		l, more, err := c.r.ReadLine()
		if err != nil {
			return "", err
		}
		if line == nil && !more {
			return string(l), nil
		}
		line = append(line, l...)
		if !more {
			break
		}
	}
	return string(line), nil
}

// A Header is one name/value pair from a request's header block.
type Header struct {
	Name  string
	Value string
}

// A Request is one parsed HTTP request together with the connection it
// arrived on. Path stays empty until resolution against the document root
// succeeds.
type Request struct {
	Method  string
	URI     string // as received, percent-undecoded
	Query   string
	Headers []Header
	Path    string
	Conn    *Connection
}

// GetHeader returns the value of the last header with the given name, or ""
// if there is none.
func (r *Request) GetHeader(name string) string {
	for i := len(r.Headers) - 1; i >= 0; i-- {
		if r.Headers[i].Name == name {
			return r.Headers[i].Value
		}
	}
	return ""
}

// httpHeader returns the request's headers in net/http form, for use with
// content-negotiation helpers.
func (r *Request) httpHeader() http.Header {
	h := make(http.Header)
	for _, hdr := range r.Headers {
		h.Add(hdr.Name, hdr.Value)
	}
	return h
}

// parseRequest reads the request line and header block from conn. A request
// that fails to parse is reported as an error; nothing is written to the
// connection here.
func parseRequest(conn *Connection) (*Request, error) {
	req := &Request{Conn: conn}

	if err := parseRequestLine(req); err != nil {
		return nil, err
	}
	if err := parseHeaders(req); err != nil {
		return nil, err
	}
	return req, nil
}

// parseRequestLine reads and parses the first line of the request:
//
//	<METHOD> <URI>[?QUERY] HTTP/<VERSION>
//
// The query, if present, runs from after the first '?' to the first '#'.
func parseRequestLine(req *Request) error {
	line, err := req.Conn.readLine()
	if err != nil {
		return fmt.Errorf("could not read request line: %v", err)
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("malformed request line %q", line)
	}
	req.Method = fields[0]
	req.URI = fields[1]

	if q := strings.Index(req.URI, "?"); q != -1 {
		req.Query = req.URI[q+1:]
		req.URI = req.URI[:q]
		if hash := strings.Index(req.Query, "#"); hash != -1 {
			req.Query = req.Query[:hash]
		}
	}

	return nil
}

// parseHeaders reads header lines until a blank line or the end of the
// stream. Each line must contain a colon; the name is the part before the
// first colon, and the value is the remainder with leading whitespace
// removed.
func parseHeaders(req *Request) error {
	for {
		line, err := req.Conn.readLine()
		if err != nil {
			// End of stream terminates the header block just like a
			// blank line does.
			return nil
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}

		colon := strings.Index(line, ":")
		if colon == -1 {
			return fmt.Errorf("malformed header line %q", line)
		}
		req.Headers = append(req.Headers, Header{
			Name:  line[:colon],
			Value: strings.TrimLeft(line[colon+1:], " \t"),
		})
	}
}
