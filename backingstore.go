package main

import (
	"log/slog"
	"os"
)

// backingStore is the paged byte source faulted pages are read from:
// a flat binary image, page n at byte offset n*256. The whole image
// is buffered at mount time.
type backingStore struct {
	buf []byte
}

// mountBackingStore reads the store image. A missing image is not an
// error: every page then reads as zeroes.
func mountBackingStore(path string) *backingStore {
	buf, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("backing store unavailable, pages read as zero", "path", path, "err", err)
		return &backingStore{}
	}
	return &backingStore{buf: buf}
}

// page returns the 256 bytes for page n, zero filled where the image
// is missing or short.
func (bs *backingStore) page(n uint8) []byte {
	data := make([]byte, pageSize)
	if off := int(n) * pageSize; off < len(bs.buf) {
		copy(data, bs.buf[off:])
	}
	return data
}
