// The mimecheck command reads a mimetypes table on standard input and
// reports extensions that are mapped to more than one content type. The
// server uses the first match for each extension, so the later mappings
// would never be used.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var cs = flag.String("charset", "utf-8", "input encoding")

func main() {
	flag.Parse()

	var in io.Reader
	in = os.Stdin

	if *cs != "utf-8" {
		e, _ := charset.Lookup(*cs)
		in = transform.NewReader(in, e.NewDecoder())
	}

	types := make(map[string]string)

	lineno := 0
	s := bufio.NewScanner(in)
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			fmt.Printf("line %d: no extensions listed for %s\n", lineno, fields[0])
			continue
		}
		for _, ext := range fields[1:] {
			if prev, ok := types[ext]; ok {
				fmt.Printf("line %d: %s is already mapped to %s; the mapping to %s will never be used\n", lineno, ext, prev, fields[0])
				continue
			}
			types[ext] = fields[0]
		}
	}
	if err := s.Err(); err != nil {
		log.Println(err)
	}

	fmt.Println(len(types), "extensions mapped")
}
