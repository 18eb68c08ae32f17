package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	// The handlers send access-log entries on an unbuffered channel, so the
	// log goroutine has to be running even in tests.
	*accessLogName = os.DevNull
	go csvLog(*accessLogName, accessLogChan)
	os.Exit(m.Run())
}

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %q, want %q", actual, expect)
	}
}

// testMimeTypes is the mimetype table used by tests, in /etc/mime.types
// format.
const testMimeTypes = `
# test mimetype table
text/html	html htm
image/png	png
image/jpeg	jpeg jpg
text/css	css
application/gzip	gz
text/x-diff	diff patch
`

// testConfig returns a config with a fresh, empty document root. The
// mimetype table and the 404 page live outside the root, so they don't show
// up in directory listings.
func testConfig(t *testing.T) *config {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	support := t.TempDir()
	mimeFile := filepath.Join(support, "mime.types")
	if err := os.WriteFile(mimeFile, []byte(testMimeTypes), 0644); err != nil {
		t.Fatal(err)
	}

	return &config{
		Port:         "9898",
		Root:         root,
		MimeFile:     mimeFile,
		DefaultType:  "text/plain",
		Mode:         modeSingle,
		NotFoundPage: filepath.Join(support, "404.html"),
		GZIPLevel:    6,
		BrotliLevel:  4,
	}
}

// An rwc glues separate streams together into an io.ReadWriteCloser, so a
// handler can be fed a canned request and have its response collected.
type rwc struct {
	io.Reader
	io.Writer
}

func (rwc) Close() error { return nil }

// serveRequest runs a single raw HTTP request through c's handler and
// returns the raw response along with the handler's status.
func serveRequest(c *config, request string) (string, Status) {
	out := new(bytes.Buffer)
	conn := newConnection(rwc{strings.NewReader(request), out}, "127.0.0.1", "40000")
	status := c.handleRequest(conn)
	conn.Close()
	return out.String(), status
}

// splitResponse separates a raw HTTP response into its header block
// (including the terminating blank line) and its body.
func splitResponse(raw string) (header, body string) {
	if i := strings.Index(raw, "\r\n\r\n"); i != -1 {
		return raw[:i+4], raw[i+4:]
	}
	return raw, ""
}

// statusLine returns the first line of a raw HTTP response.
func statusLine(raw string) string {
	if i := strings.Index(raw, "\r\n"); i != -1 {
		return raw[:i]
	}
	return raw
}
