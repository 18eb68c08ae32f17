package main

// functions for reading configuration files

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	port            = flag.String("p", "9898", "port to listen on")
	rootDir         = flag.String("r", "www", "path to document root directory")
	mimeFile        = flag.String("m", "/etc/mime.types", "path to mimetypes file")
	defaultType     = flag.String("M", "text/plain", "default mimetype")
	concurrencyMode = flag.String("c", "single", `concurrency mode ("single" or "forking")`)
	configFile      = flag.String("config", "", "path to configuration file")
	accessLogName   = flag.String("access-log", "", "path to access-log file")
	pidfile         = flag.String("pidfile", "", "path of file to store process ID")
	notFoundPage    = flag.String("404-page", "www/html/404.html", "path to page for Not Found responses")
	resolveNames    = flag.Bool("resolve-names", false, "look up client hostnames with reverse DNS")
	dnsServer       = flag.String("dns-server", "", "DNS server for hostname lookups (default: system resolver)")
	gzipLevel       = flag.Int("gzip-level", 6, "level for gzip response compression")
	brotliLevel     = flag.Int("brotli-level", 4, "level for brotli response compression")
	testPath        = flag.String("test", "", "path to resolve and classify instead of serving")
)

// A config is the complete server configuration. It is built once at startup
// and passed to the components that need it; it is never modified while
// requests are being handled.
type config struct {
	Port         string
	Root         string // canonicalized absolute path of the document root
	MimeFile     string
	DefaultType  string
	Mode         serveMode
	NotFoundPage string
	ResolveNames bool
	DNSServer    string
	GZIPLevel    int
	BrotliLevel  int
}

// loadConfiguration applies the configuration file (if one was specified) on
// top of the command-line flags, and builds the config value for the rest of
// the server.
func loadConfiguration() (*config, error) {
	if *configFile != "" {
		readConfigFile(*configFile)
	}

	mode, err := parseServeMode(*concurrencyMode)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(*rootDir)
	if err == nil {
		root, err = filepath.EvalSymlinks(root)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid document root %q: %v", *rootDir, err)
	}

	return &config{
		Port:         *port,
		Root:         root,
		MimeFile:     *mimeFile,
		DefaultType:  *defaultType,
		Mode:         mode,
		NotFoundPage: *notFoundPage,
		ResolveNames: *resolveNames,
		DNSServer:    *dnsServer,
		GZIPLevel:    *gzipLevel,
		BrotliLevel:  *brotliLevel,
	}, nil
}

// readConfigFile reads the specified configuration file.
// For each line of the form "key value" or "key = value", it sets the flag
// variable named key to a value of value.
func readConfigFile(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		log.Println("Error reading config file:", err)
		return
	}
	defer f.Close()
	r := bufio.NewReader(f)

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Println("Error reading config file:", err)
			}
			break
		}

		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		keyEnd := strings.IndexAny(line, " \t=")
		if keyEnd == -1 {
			keyEnd = len(line)
		}
		key := line[:keyEnd]
		line = line[keyEnd:]

		// Skip the space and/or equal sign.
		line = strings.TrimSpace(line)
		if line != "" && line[0] == '=' {
			line = strings.TrimSpace(line[1:])
		}

		var value string
		if line == "" {
			value = ""
		} else if line[0] == '"' {
			n, err := fmt.Sscanf(line, "%q", &value)
			if n != 1 || err != nil {
				log.Println("Improperly-quoted value in config file:", line)
				continue
			}
		} else {
			sharp := strings.Index(line, "#")
			if sharp != -1 {
				line = strings.TrimSpace(line[:sharp])
			}
			value = line
		}

		if err := flag.Set(key, value); err != nil {
			log.Println("Could not set", key, "to", value, ":", err)
		}
	}
}
