package main

// pageTableEntry records whether a page is resident and, if so, the
// frame holding it. The frame value is stale once present is false.
type pageTableEntry struct {
	present bool
	frame   int
}

// pageTable holds one entry per possible page number. Entries are
// mutated in place and never removed.
type pageTable [256]pageTableEntry

func (pt *pageTable) lookup(page uint8) pageTableEntry {
	return pt[page]
}

func (pt *pageTable) setPresent(page uint8, frame int) {
	pt[page] = pageTableEntry{present: true, frame: frame}
}

func (pt *pageTable) invalidate(page uint8) {
	pt[page].present = false
}
