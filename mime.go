package main

// Determining Content-Types from file extensions.

import (
	"bufio"
	"log"
	"os"
	"strings"
)

// determineMimetype returns the content type for path, based on its file
// extension and the mimetype table. It never fails: a path with no
// extension, an unknown extension, or an unreadable table all get the
// configured default type.
func (c *config) determineMimetype(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		// No extension, or a dotfile.
		return c.DefaultType
	}
	ext := base[dot+1:]
	if ext == "" {
		return c.DefaultType
	}

	cache := getCache("mimetypes", 4096)
	key := c.MimeFile + "\x00" + c.DefaultType + "\x00" + ext
	if t, ok := cache.Get(key); ok {
		return t.(string)
	}

	t := c.scanMimeTable(ext)
	cache.Set(key, t, 1)
	return t
}

// scanMimeTable looks ext up in the mimetype table. Each line of the table
// is one content-type token followed by whitespace-separated extension
// tokens:
//
//	text/html	html htm
//
// The first line whose extension list contains an exact match wins.
func (c *config) scanMimeTable(ext string) string {
	f, err := os.Open(c.MimeFile)
	if err != nil {
		log.Println("Could not open mimetypes file:", err)
		return c.DefaultType
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		for _, e := range fields[1:] {
			if e == ext {
				return fields[0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Println("Error reading mimetypes file:", err)
	}

	return c.DefaultType
}
