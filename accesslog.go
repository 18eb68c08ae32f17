package main

// recording served requests to the access log

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var accessLogChan = make(chan []string)

// csvLog opens a log file and writes entries to it from logChan.
// It should be run in its own goroutine.
func csvLog(filename string, logChan chan []string) {
	var logfile = os.Stdout
	actualFile := false
	var err error
	var csvWriter *csv.Writer

	openLogFile := func() {
		if filename != "" {
			logfile, err = os.OpenFile(filename, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
			if err != nil {
				log.Printf("Could not open log file (%s): %s\n Sending access log messages to standard output instead.", filename, err)
				logfile = os.Stdout
				actualFile = false
			} else {
				actualFile = true
			}
		}
		csvWriter = csv.NewWriter(logfile)
	}
	openLogFile()

	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)

	for {
		select {
		case entry := <-logChan:
			csvWriter.Write(entry)
			csvWriter.Flush()
		case <-hupChan:
			// When signaled with SIGHUP, close and reopen the log file.
			if actualFile {
				logfile.Close()
				openLogFile()
			}
		}
	}
}

// logAccess generates a log entry for a handled request and sends it on
// accessLogChan to be written. req may be nil if the request could not
// even be read.
func (c *config) logAccess(req *Request, status Status) {
	var host, port, method, uri, query string
	if req != nil {
		method, uri, query = req.Method, req.URI, req.Query
		if req.Conn != nil {
			host, port = req.Conn.Host, req.Conn.Port
		}
	}

	accessLogChan <- toStrings(time.Now().Format("2006-01-02 15:04:05"), c.clientName(host), port, method, uri, query, status.Code(), status.Reason())
}

// toStrings converts its arguments into a slice of strings.
func toStrings(a ...interface{}) []string {
	result := make([]string, len(a))
	for i, x := range a {
		result[i] = fmt.Sprint(x)
	}
	return result
}
