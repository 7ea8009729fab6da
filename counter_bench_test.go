package ctrx

import (
	"testing"
)

func BenchmarkIncr(b *testing.B) {
	b.ReportAllocs()
	var c uint64
	var g Guard
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Incr(&c, 1, &g)
		}
	})
}

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()
	var c uint64 = 1
	var g Guard
	b.RunParallel(func(pb *testing.PB) {
		var v uint64
		for pb.Next() {
			Get(&c, &v, &g)
		}
	})
}

func BenchmarkCounterIncr(b *testing.B) {
	b.ReportAllocs()
	var c Counter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Incr(1)
		}
	})
}

func BenchmarkStripedCounterIncr(b *testing.B) {
	b.ReportAllocs()
	s := NewStripedCounter()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Incr(1)
		}
	})
}

func BenchmarkGroupIncr(b *testing.B) {
	b.ReportAllocs()
	var g Group
	g.Incr("hits", 0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Incr("hits", 1)
		}
	})
}
