package concurrency

import (
	"testing"
	"time"
)

func TestCompletionLatch_ReleasesAfterLastDone(t *testing.T) {
	l := newCompletionLatch(3)
	for i := 0; i < 3; i++ {
		go l.done()
	}
	done := make(chan struct{})
	go func() {
		l.wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("latch never released")
	}
}

func TestCompletionLatch_ZeroCount(t *testing.T) {
	l := newCompletionLatch(0)
	done := make(chan struct{})
	go func() {
		l.wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero-count latch should not block")
	}
}

func TestStopFlag_SingleHandler(t *testing.T) {
	f := new(stopFlag)
	if f.stopped() {
		t.Fatal("fresh flag reports stopped")
	}
	if !f.requestStop() {
		t.Fatal("first requestStop must win the handler slot")
	}
	if f.requestStop() {
		t.Fatal("second requestStop must not re-handle")
	}
	if !f.stopped() {
		t.Fatal("flag not stopped after request")
	}
}

func TestPanicBox_FirstWins(t *testing.T) {
	b := new(panicBox)
	if b.value() != nil {
		t.Fatal("fresh box not empty")
	}
	b.capture("first")
	b.capture("second")
	if b.value() != "first" {
		t.Fatalf("value = %v, want first", b.value())
	}
}
