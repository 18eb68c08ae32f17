// Tamarack is a minimal HTTP/1.0 origin server. It serves static files,
// directory listings, and the output of CGI scripts, all from a single
// document root.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
)

func main() {
	flag.Parse()

	conf, err := loadConfiguration()
	if err != nil {
		log.Fatal(err)
	}

	go csvLog(*accessLogName, accessLogChan)

	if *pidfile != "" {
		pid := os.Getpid()
		f, err := os.Create(*pidfile)
		if err == nil {
			fmt.Fprintln(f, pid)
			f.Close()
		} else {
			log.Println("could not create pidfile:", err)
		}
	}

	if *testPath != "" {
		runPathTest(conf, *testPath)
		return
	}

	ln, err := net.Listen("tcp", ":"+conf.Port)
	if err != nil {
		log.Fatalf("error listening for connections on port %s: %s", conf.Port, err)
	}
	listenerChan <- ln

	log.Println("Listening on port", conf.Port)
	log.Println("Document root:", conf.Root)
	log.Println("Concurrency mode:", conf.Mode)

	err = conf.serve(ln)
	if err != nil && !strings.Contains(err.Error(), "use of closed") {
		log.Fatalln("Error running HTTP server:", err)
	}

	// The listener was closed for a shutdown; wait for the connections
	// that are still active to be finished.
	select {}
}
