package main

// Serving static files.

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/golang/gddo/httputil"
	"github.com/klauspost/compress/gzip"
)

// compressionThreshold is the minimum file size for compressing response
// bodies. Smaller files aren't worth the overhead.
const compressionThreshold = 1000

// handleFile responds to req with the contents of the file at its path.
// If the client asked for a compressed Content-Encoding and the file is big
// enough to be worth it, the body is compressed; otherwise it is sent
// byte-for-byte.
func (c *config) handleFile(req *Request) Status {
	f, err := os.Open(req.Path)
	if err != nil {
		log.Println("Unable to open file:", err)
		return c.handleError(req, StatusInternalServerError)
	}
	defer f.Close()

	contentType := c.determineMimetype(req.Path)

	encoding := ""
	if info, err := f.Stat(); err == nil && info.Size() > compressionThreshold {
		encoding = httputil.NegotiateContentEncoding(&http.Request{Header: req.httpHeader()}, []string{"br", "gzip"})
	}

	var compressor io.WriteCloser
	switch encoding {
	case "br":
		compressor = brotli.NewWriterOptions(req.Conn, brotli.WriterOptions{Quality: c.BrotliLevel})
	case "gzip":
		compressor, err = gzip.NewWriterLevel(req.Conn, c.GZIPLevel)
		if err != nil {
			log.Println("Error creating gzip compressor:", err)
			compressor = nil
		}
	}

	var extra []Header
	if compressor != nil {
		extra = append(extra, Header{"Content-Encoding", encoding})
	}
	if err := respondHeader(req.Conn, StatusOK, contentType, extra...); err != nil {
		log.Println("Error writing response header:", err)
		return StatusInternalServerError
	}

	var body io.Writer = req.Conn
	if compressor != nil {
		body = compressor
	}
	if _, err := io.Copy(body, f); err != nil {
		log.Println("Error sending file:", err)
		return StatusInternalServerError
	}
	if compressor != nil {
		if err := compressor.Close(); err != nil {
			log.Println("Error flushing compressed data:", err)
			return StatusInternalServerError
		}
	}

	return StatusOK
}
