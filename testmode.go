package main

// support for running "tamarack -test /some/uri"

import (
	"fmt"
	"os"
)

// runPathTest prints debugging information about how a request for uri
// would be handled.
func runPathTest(c *config, uri string) {
	fmt.Println("URI:", uri)
	fmt.Println("Document root:", c.Root)
	fmt.Println()

	path, ok := resolveRequestPath(c.Root, uri)
	if !ok {
		fmt.Println("The URI does not resolve to a path inside the document root.")
		fmt.Println("It would be answered with 404 Not Found.")
		return
	}
	fmt.Println("Resolved path:", path)
	fmt.Println()

	info, err := os.Stat(path)
	if err != nil {
		fmt.Println("The path cannot be examined:", err)
		fmt.Println("It would be answered with 500 Internal Server Error.")
		return
	}

	mode := info.Mode()
	switch {
	case mode.IsDir():
		fmt.Println("The path is a directory; it would get a directory listing.")
	case mode&os.ModeType == 0 && mode.Perm()&0100 != 0:
		fmt.Println("The path is executable; it would be run as a CGI script.")
	case mode&os.ModeType == 0 && mode.Perm()&0400 != 0:
		fmt.Println("The path is a readable file; it would be served with Content-Type", c.determineMimetype(path))
	default:
		fmt.Println("The path is not a servable file; it would be answered with 500 Internal Server Error.")
	}
}
