package ctrx

import (
	"sync"
	"testing"
)

func TestStripedCounter(t *testing.T) {
	s := NewStripedCounter()
	s.Incr(5)
	s.Incr(7)
	s.Decr(2)
	if v := s.Load(); v != 10 {
		t.Fatalf("got %d, want 10", v)
	}
}

func TestStripedCounterStripes(t *testing.T) {
	s := NewStripedCounter()
	if n := len(s.stripes); n&(n-1) != 0 || n == 0 {
		t.Fatalf("stripe count %d is not a power of two", n)
	}
	if s.mask != len(s.stripes)-1 {
		t.Fatalf("mask %d does not match %d stripes", s.mask, len(s.stripes))
	}
}

func TestStripedCounterConcurrent(t *testing.T) {
	const n = 8
	const perG = 10000

	s := NewStripedCounter()
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range perG {
				s.Incr(1)
			}
		}()
	}
	wg.Wait()
	if v := s.Load(); v != n*perG {
		t.Fatalf("got %d, want %d", v, n*perG)
	}

	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range perG {
				s.Decr(1)
			}
		}()
	}
	wg.Wait()
	if v := s.Load(); v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
}

func TestStripedCounterLoadDuringWriters(t *testing.T) {
	const n = 4
	const perG = 10000
	const total = n * perG

	s := NewStripedCounter()
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range perG {
				s.Incr(1)
			}
		}()
	}

	// Increment-only stripes are individually monotonic, so a sum can
	// only undercount in-flight work, never exceed the final total.
	for {
		v := s.Load()
		if v > total {
			t.Fatalf("sum %d exceeds total %d", v, total)
		}
		if v == total {
			break
		}
	}
	wg.Wait()
}
