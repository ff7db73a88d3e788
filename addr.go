package main

// addr16 is a 16 bit virtual address.
type addr16 uint16

func (a addr16) page() uint8   { return uint8(a >> 8) }
func (a addr16) offset() uint8 { return uint8(a) }
