package main

import (
	"fmt"
	"log/slog"
)

// statistics are the monotonically increasing counters of one run.
type statistics struct {
	totalAccesses int
	pageFaults    int
	tlbHits       int
	tlbMisses     int
}

// summary is the derived statistics block printed after a run. Rates
// are percentages, 0 when nothing was accessed.
type summary struct {
	pageFaults    int
	pageFaultRate float64
	tlbHits       int
	tlbMisses     int
	tlbHitRate    float64
}

// access is the result of translating one virtual address.
type access struct {
	frame int
	value int8
	dump  string
}

// simulator owns every mutable structure of one run: the TLB, the
// page table, physical memory, the replacement policy and the
// counters. Nothing is shared between instances.
type simulator struct {
	tlb    *TLB
	table  pageTable
	mem    *physicalMemory
	policy replacementPolicy
	store  *backingStore
	stats  statistics
}

func newSimulator(frameCount int, algorithm string, store *backingStore) (*simulator, error) {
	if frameCount < 1 || frameCount > 256 {
		return nil, fmt.Errorf("frame count %d out of range 1-256", frameCount)
	}
	mem := newPhysicalMemory(frameCount)
	policy, err := newPolicy(algorithm, mem)
	if err != nil {
		return nil, err
	}
	return &simulator{
		tlb:    newTLB(),
		mem:    mem,
		policy: policy,
		store:  store,
	}, nil
}

// translate resolves one virtual address to a frame and reads the
// addressed byte. sequence and index give the full reference stream
// and the position of address within it, which OPT needs for its
// lookahead; translations must be made strictly in sequence order.
func (s *simulator) translate(address addr16, sequence []addr16, index int) access {
	page, offset := address.page(), address.offset()
	s.stats.totalAccesses++

	frame, ok := s.tlb.lookup(page)
	if ok {
		s.stats.tlbHits++
		s.policy.onAccess(frame)
	} else {
		s.stats.tlbMisses++
		if e := s.table.lookup(page); e.present {
			frame = e.frame
			s.policy.onAccess(frame)
		} else {
			frame = s.fault(page, sequence, index)
		}
	}
	// Refresh on hits too: the entry becomes the newest again.
	s.tlb.insert(page, frame)

	return access{
		frame: frame,
		value: s.mem.readByte(frame, offset),
		dump:  s.mem.dumpHex(frame),
	}
}

// fault loads page from the backing store into a free frame, or into
// the victim's frame when memory is full. The victim's page table
// entry and TLB entry are invalidated before the frame is reused.
func (s *simulator) fault(page uint8, sequence []addr16, index int) int {
	s.stats.pageFaults++
	data := s.store.page(page)

	frame, ok := s.mem.allocate()
	if !ok {
		frame = s.policy.selectVictim(sequence, index)
		if victim, resident := s.mem.pageAt(frame); resident {
			s.table.invalidate(victim)
			s.tlb.remove(victim)
			slog.Debug("evicting page", "page", victim, "frame", frame)
		}
	}

	s.mem.load(frame, page, data)
	s.table.setPresent(page, frame)
	s.policy.onLoad(frame)
	slog.Debug("page fault", "page", page, "frame", frame)
	return frame
}

// summary derives the final statistics block.
func (s *simulator) summary() summary {
	sum := summary{
		pageFaults: s.stats.pageFaults,
		tlbHits:    s.stats.tlbHits,
		tlbMisses:  s.stats.tlbMisses,
	}
	if n := s.stats.totalAccesses; n > 0 {
		sum.pageFaultRate = 100 * float64(s.stats.pageFaults) / float64(n)
		sum.tlbHitRate = 100 * float64(s.stats.tlbHits) / float64(n)
	}
	return sum
}
