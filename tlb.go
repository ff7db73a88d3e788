package main

import "container/list"

// tlbSize is the number of translations the cache holds.
const tlbSize = 16

type tlbEntry struct {
	page  uint8
	frame int
}

// TLB is the translation cache consulted before the page table.
// Entries age in insertion order. Inserting a page that is already
// cached removes it and re-appends it as the newest entry, so a
// refreshed translation is the last of the current entries to go.
type TLB struct {
	order   *list.List // oldest entry at the front
	entries map[uint8]*list.Element
}

func newTLB() *TLB {
	return &TLB{
		order:   list.New(),
		entries: make(map[uint8]*list.Element, tlbSize),
	}
}

// lookup returns the cached frame for page. It never reorders.
func (t *TLB) lookup(page uint8) (int, bool) {
	e, ok := t.entries[page]
	if !ok {
		return 0, false
	}
	return e.Value.(tlbEntry).frame, true
}

// insert caches page→frame as the newest entry, evicting the oldest
// entry first when the cache is full.
func (t *TLB) insert(page uint8, frame int) {
	if e, ok := t.entries[page]; ok {
		t.order.Remove(e)
		delete(t.entries, page)
	} else if t.order.Len() >= tlbSize {
		oldest := t.order.Front()
		delete(t.entries, oldest.Value.(tlbEntry).page)
		t.order.Remove(oldest)
	}
	t.entries[page] = t.order.PushBack(tlbEntry{page, frame})
}

// remove invalidates the entry for page, if any. Called when the
// frame backing page is reassigned by an eviction.
func (t *TLB) remove(page uint8) {
	e, ok := t.entries[page]
	if !ok {
		return
	}
	t.order.Remove(e)
	delete(t.entries, page)
}

func (t *TLB) len() int { return t.order.Len() }
