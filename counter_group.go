package ctrx

import (
	"github.com/llxisdsh/pb"
)

// Group is a registry of named counters, the shape a server's
// statistics subsystem wants: counters are created on first use and
// addressed by name from any goroutine.
//
// The zero value is ready to use. A Group must not be copied after
// first use.
type Group struct {
	_ noCopy
	m pb.MapOf[string, *Counter]
}

// Counter returns the counter registered under name, creating it on
// first use. The returned pointer is stable until Delete, so hot paths
// should resolve it once and keep it.
func (g *Group) Counter(name string) *Counter {
	if c, ok := g.m.Load(name); ok {
		return c
	}
	var c *Counter
	_, _ = g.m.ProcessEntry(
		name,
		func(l *pb.EntryOf[string, *Counter]) (*pb.EntryOf[string, *Counter], *Counter, bool) {
			if l != nil {
				c = l.Value
				return l, c, true
			}
			c = &Counter{}
			return &pb.EntryOf[string, *Counter]{Value: c}, c, false
		},
	)
	return c
}

// Incr adds delta to the named counter, creating it on first use.
func (g *Group) Incr(name string, delta uint64) {
	g.Counter(name).Incr(delta)
}

// Decr subtracts delta from the named counter, creating it on first use.
func (g *Group) Decr(name string, delta uint64) {
	g.Counter(name).Decr(delta)
}

// Load returns a snapshot of the named counter, or zero if it was never
// registered. Absent names are not created.
func (g *Group) Load(name string) uint64 {
	if c, ok := g.m.Load(name); ok {
		return c.Load()
	}
	return 0
}

// Delete removes the named counter. Holders of the old pointer keep a
// live but unregistered counter.
func (g *Group) Delete(name string) {
	g.m.Delete(name)
}

// Range calls f for each registered counter until f returns false.
func (g *Group) Range(f func(name string, c *Counter) bool) {
	g.m.Range(f)
}

// Snapshot copies the current name/value pairs. Values for different
// names are read at slightly different times; each individual value is
// coherent.
func (g *Group) Snapshot() map[string]uint64 {
	out := make(map[string]uint64)
	g.m.Range(func(name string, c *Counter) bool {
		out[name] = c.Load()
		return true
	})
	return out
}
