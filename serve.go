package main

// Accepting connections, in both concurrency modes.

import (
	"fmt"
	"log"
	"net"
	"time"
)

// A serveMode selects how the server divides its attention between clients.
type serveMode int

const (
	// modeSingle serves one connection at a time.
	modeSingle serveMode = iota

	// modeForking serves each connection in its own goroutine.
	modeForking
)

func (m serveMode) String() string {
	switch m {
	case modeSingle:
		return "single"
	case modeForking:
		return "forking"
	}
	return "unknown"
}

func parseServeMode(s string) (serveMode, error) {
	switch s {
	case "single":
		return modeSingle, nil
	case "forking":
		return modeForking, nil
	}
	return 0, fmt.Errorf("invalid concurrency mode %q", s)
}

// serve accepts connections on ln and dispatches them according to the
// configured concurrency mode. It runs until the listener is closed.
func (c *config) serve(ln net.Listener) error {
	var tempDelay time.Duration

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				log.Printf("Accept error: %v; retrying in %v", err, tempDelay)
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		switch c.Mode {
		case modeSingle:
			c.handleConnection(conn)
		case modeForking:
			go c.handleConnection(conn)
		}
	}
}

// handleConnection serves one HTTP request on nc. This is HTTP/1.0, so the
// connection is closed as soon as the request has been answered.
func (c *config) handleConnection(nc net.Conn) {
	activeConnections.Add(1)
	defer activeConnections.Done()

	host, port, err := net.SplitHostPort(nc.RemoteAddr().String())
	if err != nil {
		host = nc.RemoteAddr().String()
	}
	log.Printf("Accepted connection from %s:%s", host, port)

	conn := newConnection(nc, host, port)
	defer conn.Close()

	c.handleRequest(conn)
}
