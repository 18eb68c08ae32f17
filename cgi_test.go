package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCGIEnvironment(t *testing.T) {
	c := testConfig(t)
	path := writeScript(t, c.Root, "env.sh", `printf 'HTTP/1.0 200 OK\r\nContent-Type: text/plain\r\n\r\n'
echo "method=$REQUEST_METHOD"
echo "uri=$REQUEST_URI"
echo "query=$QUERY_STRING"
echo "root=$DOCUMENT_ROOT"
echo "script=$SCRIPT_FILENAME"
echo "addr=$REMOTE_ADDR"
echo "rport=$REMOTE_PORT"
echo "sport=$SERVER_PORT"
echo "host=$HTTP_HOST"
echo "agent=$HTTP_USER_AGENT"
echo "accept=$HTTP_ACCEPT"
echo "lang=$HTTP_ACCEPT_LANGUAGE"
echo "enc=$HTTP_ACCEPT_ENCODING"
echo "conn=$HTTP_CONNECTION"
`)

	request := "GET /env.sh?user=pat&lang=en HTTP/1.0\r\n" +
		"Host: localhost:9898\r\n" +
		"User-Agent: tester/1.0\r\n" +
		"Accept: text/html\r\n" +
		"Accept-Language: en-US\r\n" +
		"Accept-Encoding: gzip\r\n" +
		"Connection: close\r\n" +
		"\r\n"
	resp, status := serveRequest(c, request)
	if status != StatusOK {
		t.Fatalf("status = %v, want %v", status, StatusOK)
	}

	_, body := splitResponse(resp)
	want := []string{
		"method=GET",
		"uri=/env.sh",
		"query=user=pat&lang=en",
		"root=" + c.Root,
		"script=" + path,
		"addr=127.0.0.1",
		"rport=40000",
		"sport=9898",
		"host=localhost:9898",
		"agent=tester/1.0",
		"accept=text/html",
		"lang=en-US",
		"enc=gzip",
		"conn=close",
	}
	ExpectEqual(t, strings.Join(want, "\n")+"\n", body)
}

func TestCGIDuplicateHeader(t *testing.T) {
	c := testConfig(t)
	writeScript(t, c.Root, "host.sh", `printf 'HTTP/1.0 200 OK\r\n\r\n%s' "$HTTP_HOST"`)

	resp, _ := serveRequest(c, "GET /host.sh HTTP/1.0\r\nHost: first\r\nHost: second\r\n\r\n")
	_, body := splitResponse(resp)
	ExpectEqual(t, "second", body)
}

func TestCGIOutputCopiedToEOF(t *testing.T) {
	c := testConfig(t)
	// Blank lines and NUL bytes in the script's output must not cut the
	// copy short.
	writeScript(t, c.Root, "odd.sh", `printf 'HTTP/1.0 200 OK\r\n\r\nfirst\n\nafter blank\n'
printf 'nul:\000:done\n'`)

	resp, status := serveRequest(c, "GET /odd.sh HTTP/1.0\r\n\r\n")
	if status != StatusOK {
		t.Fatalf("status = %v, want %v", status, StatusOK)
	}
	_, body := splitResponse(resp)
	ExpectEqual(t, "first\n\nafter blank\nnul:\x00:done\n", body)
}

func TestCGINonzeroExit(t *testing.T) {
	c := testConfig(t)
	writeScript(t, c.Root, "fail.sh", `printf 'HTTP/1.0 200 OK\r\n\r\npartial'
exit 3`)

	// By the time the exit status is known, the output has been sent, so
	// the request still counts as handled.
	resp, status := serveRequest(c, "GET /fail.sh HTTP/1.0\r\n\r\n")
	if status != StatusOK {
		t.Errorf("status = %v, want %v", status, StatusOK)
	}
	_, body := splitResponse(resp)
	ExpectEqual(t, "partial", body)
}

func TestCGIStartFailure(t *testing.T) {
	c := testConfig(t)
	conn := newConnection(rwc{strings.NewReader(""), new(strings.Builder)}, "127.0.0.1", "40000")
	req := &Request{
		Method: "GET",
		URI:    "/ghost.sh",
		Path:   filepath.Join(c.Root, "ghost.sh"),
		Conn:   conn,
	}

	if status := c.handleCGI(req); status != StatusInternalServerError {
		t.Errorf("status = %v, want %v", status, StatusInternalServerError)
	}
}
