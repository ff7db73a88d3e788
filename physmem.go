package main

import "encoding/hex"

// pageSize is the page and frame size in bytes.
const pageSize = 256

// physicalMemory is a fixed array of page frames, the reverse
// frame→page bindings, and the pool of frames not yet holding a page.
type physicalMemory struct {
	frames [][pageSize]byte
	owner  []int // frame → page number, -1 while free
	pool   []int // free frame indices
}

func newPhysicalMemory(frameCount int) *physicalMemory {
	m := &physicalMemory{
		frames: make([][pageSize]byte, frameCount),
		owner:  make([]int, frameCount),
		pool:   make([]int, frameCount),
	}
	for i := range m.owner {
		m.owner[i] = -1
		m.pool[i] = i
	}
	return m
}

// allocate pops a frame from the free pool.
func (m *physicalMemory) allocate() (int, bool) {
	if len(m.pool) == 0 {
		return 0, false
	}
	f := m.pool[0]
	m.pool = m.pool[1:]
	return f, true
}

// free returns a frame to the pool and clears its page binding. The
// fault path bypasses this and reuses victim frames in place.
func (m *physicalMemory) free(frame int) {
	m.owner[frame] = -1
	m.pool = append(m.pool, frame)
}

// load overwrites the frame with data, which must be a full page, and
// binds the frame to page.
func (m *physicalMemory) load(frame int, page uint8, data []byte) {
	copy(m.frames[frame][:], data)
	m.owner[frame] = int(page)
}

// pageAt reports the page currently bound to frame.
func (m *physicalMemory) pageAt(frame int) (uint8, bool) {
	p := m.owner[frame]
	if p < 0 {
		return 0, false
	}
	return uint8(p), true
}

// readByte reinterprets the stored byte as signed, the convention the
// output format uses.
func (m *physicalMemory) readByte(frame int, offset uint8) int8 {
	return int8(m.frames[frame][offset])
}

// dumpHex returns the full frame content as 512 lowercase hex digits.
func (m *physicalMemory) dumpHex(frame int) string {
	return hex.EncodeToString(m.frames[frame][:])
}

func (m *physicalMemory) frameCount() int { return len(m.frames) }
func (m *physicalMemory) usedFrames() int { return len(m.frames) - len(m.pool) }
