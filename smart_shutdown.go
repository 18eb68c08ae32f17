package main

// Shutting down cleanly on SIGTERM, without cutting off requests that are
// still being answered.

import (
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var listenerChan = make(chan net.Listener)

var activeConnections sync.WaitGroup

func init() {
	go watchForSIGTERM()
}

func watchForSIGTERM() {
	var listeners []net.Listener
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)

	for {
		select {
		case l := <-listenerChan:
			listeners = append(listeners, l)

		case <-sigChan:
			log.Println("Received SIGTERM")
			for _, ln := range listeners {
				ln.Close()
			}
			if *pidfile != "" {
				os.Remove(*pidfile)
			}
			log.Println("Waiting for active requests to finish")
			go func() {
				// Allow 20 seconds for active connections to finish.
				time.Sleep(20 * time.Second)
				os.Exit(0)
			}()
			// Or exit when all active connections have finished.
			activeConnections.Wait()
			os.Exit(0)
		}
	}
}
