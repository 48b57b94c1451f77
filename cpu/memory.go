package cpu

// Memory is the flat, byte-addressed backing store shared by
// instruction fetch and data access. All multi-byte transfers are
// little-endian.
type Memory struct {
	Bytes []byte
}

// NewMemory allocates a zeroed memory array of the given size.
func NewMemory(size int) *Memory {
	return &Memory{Bytes: make([]byte, size)}
}

// Load reads width bytes (1, 2, 4, or 8) at addr, little-endian,
// zero-extended into a 64-bit accumulator. ok is false, and value is
// zero, if any byte of the access falls outside the array; per spec
// this is a silent no-op rather than a fault.
func (m *Memory) Load(addr uint32, width int) (value uint64, ok bool) {
	if !m.inBounds(addr, width) {
		return 0, false
	}
	for k := 0; k < width; k++ {
		value |= uint64(m.Bytes[int(addr)+k]) << (8 * k)
	}
	return value, true
}

// Store writes the low width bytes of value at addr, little-endian.
// ok is false if any byte of the access falls outside the array; the
// store is then a complete no-op (no partial write).
func (m *Memory) Store(addr uint32, value uint64, width int) (ok bool) {
	if !m.inBounds(addr, width) {
		return false
	}
	for k := 0; k < width; k++ {
		m.Bytes[int(addr)+k] = byte(value >> (8 * k))
	}
	return true
}

func (m *Memory) inBounds(addr uint32, width int) bool {
	end := uint64(addr) + uint64(width)
	return end <= uint64(len(m.Bytes))
}
