package main

import "strings"

// A Status is the outcome of handling one HTTP request. Every handler
// produces one; it is used for selecting error pages and for access logging.
type Status int

const (
	StatusOK Status = iota
	StatusBadRequest
	StatusNotFound
	StatusInternalServerError
)

// String returns the status-line form of s, e.g. "404 Not Found".
// Unrecognized values get the fallback string.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "200 OK"
	case StatusBadRequest:
		return "400 Bad Request"
	case StatusNotFound:
		return "404 Not Found"
	case StatusInternalServerError:
		return "500 Internal Server Error"
	}
	return "418 I'm A Teapot"
}

// Reason returns the reason phrase for s, e.g. "Not Found".
func (s Status) Reason() string {
	str := s.String()
	if i := strings.IndexByte(str, ' '); i != -1 {
		return str[i+1:]
	}
	return str
}

// Code returns the numeric HTTP status code for s.
func (s Status) Code() int {
	switch s {
	case StatusOK:
		return 200
	case StatusBadRequest:
		return 400
	case StatusNotFound:
		return 404
	case StatusInternalServerError:
		return 500
	}
	return 418
}
