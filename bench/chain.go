package bench

import (
	"fmt"
	"slices"
	"strconv"

	"rangekit/containers"
	"rangekit/engine"
	"rangekit/seqs"
)

var (
	ErrMismatch = fmt.Errorf("baseline and pipeline disagree")
)

// chainState holds the stateful predicates shared by both versions of the chain.
type chainState struct {
	seen    int
	flip    bool
	results int
}

// discard drops every third element it is asked about.
func (s *chainState) discard(engine.Object) bool {
	s.seen++
	return s.seen%3 == 0
}

// flipFlop keeps every other element it is asked about.
func (s *chainState) flipFlop(*engine.MetaData) bool {
	s.flip = !s.flip
	return s.flip
}

func (s *chainState) label(name string) string {
	s.results++
	return name + strconv.Itoa(s.results)
}

// Baseline runs the chain as a hand-written loop.
func Baseline(objs *containers.Array[engine.Object]) *containers.Array[string] {
	var s chainState
	names := containers.NewArray[string](0)
	for obj := range objs.Values() {
		if s.discard(obj) {
			continue
		}
		meta := engine.Cast[*engine.MetaData](obj)
		if meta == nil {
			continue
		}
		if s.flipFlop(meta) {
			names.Add(s.label(meta.Name()))
		}
	}
	return names
}

// Pipeline runs the same chain as an adapter pipeline.
func Pipeline(objs *containers.Array[engine.Object]) *containers.Array[string] {
	var s chainState
	metas := seqs.OfType[*engine.MetaData](seqs.WhereNot(objs.Values(), s.discard))
	kept := seqs.Where(metas, s.flipFlop)
	names := seqs.Select(kept, (*engine.MetaData).Name)
	return seqs.ToArray(seqs.Select(names, s.label))
}

// Verify runs both versions once and reports ErrMismatch if they differ.
// It returns the number of names produced.
func Verify(objs *containers.Array[engine.Object]) (int, error) {
	want := Baseline(objs).ToSlice()
	got := Pipeline(objs).ToSlice()
	if !slices.Equal(want, got) {
		return 0, fmt.Errorf("%w: baseline produced %d names, pipeline %d", ErrMismatch, len(want), len(got))
	}
	return len(got), nil
}
