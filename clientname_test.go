package main

import "testing"

func TestClientNameDisabled(t *testing.T) {
	c := testConfig(t)

	ExpectEqual(t, "192.0.2.7", c.clientName("192.0.2.7"))
}

func TestClientNameBadAddress(t *testing.T) {
	// An address that can't even be turned into a PTR query falls back
	// to the address itself, without any network traffic.
	c := testConfig(t)
	c.ResolveNames = true
	c.DNSServer = "192.0.2.53"

	ExpectEqual(t, "not-an-ip", c.clientName("not-an-ip"))
}

func TestLookupAddrRejectsGarbage(t *testing.T) {
	if _, err := lookupAddr("not-an-ip", "192.0.2.53"); err == nil {
		t.Error("no error for a malformed address")
	}
}
