package main

import (
	"testing"

	"github.com/matryer/is"
)

// refs builds a reference sequence touching the given pages at offset 0.
func refs(pages ...int) []addr16 {
	seq := make([]addr16, len(pages))
	for i, p := range pages {
		seq[i] = addr16(p << 8)
	}
	return seq
}

func runFaults(t *testing.T, frames int, algorithm string, seq []addr16) *simulator {
	t.Helper()
	sim, err := newSimulator(frames, algorithm, &backingStore{})
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range seq {
		sim.translate(a, seq, i)
	}
	return sim
}

func TestFIFOIgnoresHits(t *testing.T) {
	is := is.New(t)

	// Page 1 is hit right before memory fills, yet it is still the
	// oldest load and must be the one evicted.
	sim := runFaults(t, 2, "FIFO", refs(1, 2, 1, 3))
	is.True(!sim.table.lookup(1).present)
	is.True(sim.table.lookup(2).present)
	is.True(sim.table.lookup(3).present)
}

func TestLRUEvictsLeastRecent(t *testing.T) {
	is := is.New(t)

	// Same stream as the FIFO test, but the hit on page 1 protects it.
	sim := runFaults(t, 2, "LRU", refs(1, 2, 1, 3))
	is.True(sim.table.lookup(1).present)
	is.True(!sim.table.lookup(2).present)
	is.True(sim.table.lookup(3).present)
}

func TestOPTEvictsFarthestNextUse(t *testing.T) {
	is := is.New(t)

	// At the fault on page 3, page 1 recurs at index 3 and page 2
	// never recurs, so page 2 goes.
	sim := runFaults(t, 2, "OPT", refs(1, 2, 3, 1))
	is.True(sim.table.lookup(1).present)
	is.True(!sim.table.lookup(2).present)
	is.True(sim.table.lookup(3).present)
}

func TestOPTTieBreakLowestFrame(t *testing.T) {
	is := is.New(t)

	// Neither resident page recurs: both next uses are infinite, and
	// the scan in ascending frame order keeps the first maximum, so
	// frame 0 (page 1) is reclaimed.
	seq := refs(1, 2, 3)
	sim, err := newSimulator(2, "OPT", &backingStore{})
	is.NoErr(err)
	for i, a := range seq {
		sim.translate(a, seq, i)
	}
	is.True(!sim.table.lookup(1).present)
	is.True(sim.table.lookup(2).present)
	e := sim.table.lookup(3)
	is.True(e.present)
	is.Equal(e.frame, 0)
}

func TestBeladyAnomaly(t *testing.T) {
	is := is.New(t)

	// The classic anomaly stream: FIFO does strictly worse with the
	// extra frame.
	seq := refs(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5)

	three := runFaults(t, 3, "FIFO", seq)
	four := runFaults(t, 4, "FIFO", seq)

	is.Equal(three.stats.pageFaults, 9)
	is.Equal(four.stats.pageFaults, 10)
	is.True(three.stats.pageFaults < four.stats.pageFaults)
}

func TestOPTIsOptimal(t *testing.T) {
	is := is.New(t)

	streams := [][]addr16{
		refs(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5),
		refs(0, 1, 2, 3, 0, 1, 4, 0, 1, 2, 3, 4, 2, 0, 3, 1),
		refs(7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1),
	}
	for _, seq := range streams {
		for frames := 2; frames <= 4; frames++ {
			opt := runFaults(t, frames, "OPT", seq).stats.pageFaults
			fifo := runFaults(t, frames, "FIFO", seq).stats.pageFaults
			lru := runFaults(t, frames, "LRU", seq).stats.pageFaults
			is.True(opt <= fifo)
			is.True(opt <= lru)
		}
	}
}

func TestFIFOResidencyBound(t *testing.T) {
	is := is.New(t)

	sim := runFaults(t, 3, "FIFO", refs(1, 2, 3, 4, 5, 1, 2, 6, 3))
	resident := 0
	for p := 0; p < 256; p++ {
		if sim.table.lookup(uint8(p)).present {
			resident++
		}
	}
	is.Equal(resident, 3)
}

func TestNewPolicyUnknown(t *testing.T) {
	is := is.New(t)

	_, err := newPolicy("CLOCK", newPhysicalMemory(1))
	is.True(err != nil)
}
