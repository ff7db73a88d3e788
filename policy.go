package main

import (
	"fmt"
	"math"
)

// replacementPolicy selects which resident frame to reclaim when a
// page must be loaded and no frame is free.
type replacementPolicy interface {
	// onLoad records that a page was just loaded into frame.
	onLoad(frame int)
	// onAccess records a hit on a resident frame.
	onAccess(frame int)
	// selectVictim returns the frame to reclaim. OPT consults the
	// reference sequence past index; FIFO and LRU ignore both.
	selectVictim(sequence []addr16, index int) int
}

func newPolicy(name string, mem *physicalMemory) (replacementPolicy, error) {
	switch name {
	case "FIFO":
		return &fifoPolicy{}, nil
	case "LRU":
		return &lruPolicy{}, nil
	case "OPT":
		return &optPolicy{mem: mem}, nil
	default:
		return nil, fmt.Errorf("unknown replacement algorithm %q", name)
	}
}

// fifoPolicy evicts the frame loaded longest ago. Hits never reorder
// the queue.
type fifoPolicy struct {
	queue []int // frame indices in load order
}

func (p *fifoPolicy) onLoad(frame int) { p.queue = append(p.queue, frame) }
func (p *fifoPolicy) onAccess(int)     {}

func (p *fifoPolicy) selectVictim([]addr16, int) int {
	f := p.queue[0]
	p.queue = p.queue[1:]
	return f
}

// lruPolicy evicts the frame whose page was touched least recently.
// Both loads and hits count as touches.
type lruPolicy struct {
	recency []int // least recently used frame first
}

func (p *lruPolicy) touch(frame int) {
	for i, f := range p.recency {
		if f == frame {
			p.recency = append(p.recency[:i], p.recency[i+1:]...)
			break
		}
	}
	p.recency = append(p.recency, frame)
}

func (p *lruPolicy) onLoad(frame int)   { p.touch(frame) }
func (p *lruPolicy) onAccess(frame int) { p.touch(frame) }

func (p *lruPolicy) selectVictim([]addr16, int) int {
	f := p.recency[0]
	p.recency = p.recency[1:]
	return f
}

// optPolicy evicts the frame whose page is next referenced farthest
// in the future. It keeps no state of its own; the resident pages
// come from physical memory at decision time.
type optPolicy struct {
	mem *physicalMemory
}

func (p *optPolicy) onLoad(int)   {}
func (p *optPolicy) onAccess(int) {}

// selectVictim scans occupied frames in ascending index order, so a
// tie on next-use distance goes to the lowest numbered frame. A page
// with no reference after index is treated as never used again.
func (p *optPolicy) selectVictim(sequence []addr16, index int) int {
	victim, farthest := 0, -1
	for frame := 0; frame < p.mem.frameCount(); frame++ {
		page, ok := p.mem.pageAt(frame)
		if !ok {
			continue
		}
		next := math.MaxInt
		for i := index + 1; i < len(sequence); i++ {
			if sequence[i].page() == page {
				next = i
				break
			}
		}
		if next > farthest {
			farthest = next
			victim = frame
		}
	}
	return victim
}
