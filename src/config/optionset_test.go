package config

import "testing"

func TestOptionSetLastWriteWins(t *testing.T) {
	c := newClientConfig()
	c.set("bootstrap.servers", "a:9092")
	c.set("client.id", "one")
	c.set("bootstrap.servers", "b:9092")

	if got, ok := c.Get("bootstrap.servers"); !ok || got != "b:9092" {
		t.Errorf("Expected last write b:9092, got %q (set=%v)", got, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 distinct options, got %d", c.Len())
	}
}

func TestOptionSetPreservesFirstAssignmentOrder(t *testing.T) {
	c := newClientConfig()
	c.set("client.id", "one")
	c.set("bootstrap.servers", "a:9092")
	c.set("client.id", "two")

	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "client.id" || entries[0].Value != "two" {
		t.Errorf("Expected client.id=two first, got %s=%s", entries[0].Name, entries[0].Value)
	}
	if entries[1].Name != "bootstrap.servers" {
		t.Errorf("Expected bootstrap.servers second, got %s", entries[1].Name)
	}
}

func TestOptionSetUnsetIsAbsent(t *testing.T) {
	c := newClientConfig()
	if _, ok := c.Get("retries"); ok {
		t.Error("Expected unset option to be absent, not defaulted")
	}
}
