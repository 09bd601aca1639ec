package notify

import (
	"errors"
	"fmt"
	"testing"
)

func TestPushMostRecentFirst(t *testing.T) {
	c := NewCenter()
	c.Push("first")
	c.Push("second")
	c.Push("third")

	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if entries[i].Message != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Message, w)
		}
	}
}

func TestPushBounded(t *testing.T) {
	c := NewCenter()
	for i := 0; i < 8; i++ {
		c.Push(fmt.Sprintf("msg-%d", i))
	}

	entries := c.Entries()
	if len(entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(entries))
	}
	if entries[0].Message != "msg-7" {
		t.Errorf("newest = %q, want msg-7", entries[0].Message)
	}
	if entries[4].Message != "msg-3" {
		t.Errorf("oldest kept = %q, want msg-3", entries[4].Message)
	}
}

func TestSinksRunInOrder(t *testing.T) {
	c := NewCenter()
	var order []string
	c.AddSink(func(msg string) error {
		order = append(order, "a:"+msg)
		return nil
	})
	c.AddSink(func(msg string) error {
		order = append(order, "b:"+msg)
		return nil
	})

	c.Push("hi")
	if len(order) != 2 || order[0] != "a:hi" || order[1] != "b:hi" {
		t.Errorf("sink order = %v", order)
	}
}

func TestSinkFailureDoesNotPropagate(t *testing.T) {
	c := NewCenter()
	c.AddSink(func(string) error { return errors.New("down") })

	var reached bool
	c.AddSink(func(string) error {
		reached = true
		return nil
	})

	c.Push("hi")
	if !reached {
		t.Error("second sink should run despite first failing")
	}
	if len(c.Entries()) != 1 {
		t.Error("entry should be recorded despite sink failure")
	}
}

func TestClear(t *testing.T) {
	c := NewCenter()
	c.Push("hi")
	c.Clear()
	if len(c.Entries()) != 0 {
		t.Error("entries should be empty after Clear")
	}
}
