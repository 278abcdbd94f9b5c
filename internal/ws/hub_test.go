package ws

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func recvPayload(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case b := <-c.send:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("no payload delivered")
		return nil
	}
}

func TestHub_SessionScopedBroadcast(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	a := NewClient(hub, nil, "s1")
	b := NewClient(hub, nil, "s2")
	hub.Register(a)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Broadcast("s1", []byte("hello"))

	if got := string(recvPayload(t, a)); got != "hello" {
		t.Fatalf("payload = %q", got)
	}
	select {
	case payload := <-b.send:
		t.Fatalf("other session received %q", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_EmptySessionReachesEveryone(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	a := NewClient(hub, nil, "s1")
	b := NewClient(hub, nil, "s2")
	hub.Register(a)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Broadcast("", []byte("notice"))

	if got := string(recvPayload(t, a)); got != "notice" {
		t.Fatalf("payload = %q", got)
	}
	if got := string(recvPayload(t, b)); got != "notice" {
		t.Fatalf("payload = %q", got)
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	c := NewClient(hub, nil, "s1")
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("expected closed channel, got payload")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestHub_NilReceiverIsSafe(t *testing.T) {
	var hub *Hub
	hub.Broadcast("s1", []byte("x"))
	hub.Register(nil)
	hub.Unregister(nil)
	if hub.ClientCount() != 0 {
		t.Fatal("nil hub reported clients")
	}
}
