package main

// Reverse-DNS lookups for client addresses.

import (
	"net"
	"strings"

	"github.com/miekg/dns"
)

// clientName returns a name for the client at addr (an IP address), for use
// in log lines. If reverse-DNS resolution is disabled or fails, it is just
// the address itself. Results are cached, so the access log doesn't have to
// wait for a DNS query on every request from a busy client.
func (c *config) clientName(addr string) string {
	if !c.ResolveNames {
		return addr
	}

	cache := getCache("client-names", 1024)
	if n, ok := cache.Get(addr); ok {
		return n.(string)
	}

	name := addr
	if n, err := lookupAddr(addr, c.DNSServer); err == nil && n != "" {
		name = n
	}

	cache.Set(addr, name, 1)
	return name
}

// lookupAddr does a reverse (PTR) lookup for the IP address addr,
// with the system resolver, or with the DNS server specified by server
// if it is nonempty.
func lookupAddr(addr, server string) (string, error) {
	if server == "" {
		names, err := net.LookupAddr(addr)
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "", nil
		}
		return strings.TrimSuffix(names[0], "."), nil
	}

	rev, err := dns.ReverseAddr(addr)
	if err != nil {
		return "", err
	}

	m := new(dns.Msg)
	m.SetQuestion(rev, dns.TypePTR)
	resp, err := dns.Exchange(m, net.JoinHostPort(server, "53"))
	if err != nil {
		return "", err
	}

	for _, a := range resp.Answer {
		if a, ok := a.(*dns.PTR); ok {
			return strings.TrimSuffix(a.Ptr, "."), nil
		}
	}

	return "", nil
}
