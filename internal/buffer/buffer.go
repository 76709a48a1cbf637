package buffer

// Buffer is a float queue of constant capacity.
// Once full, every push evicts the oldest value.
type Buffer struct {
	size   int
	values []float64
}

// NewBuffer creates a new buffer of the given capacity.
// A non-positive capacity creates a buffer that keeps nothing.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{
		size:   size,
		values: make([]float64, 0, size),
	}
}

// Push adds an element to the buffer and returns the evicted one, if any.
func (b *Buffer) Push(x float64) (float64, bool) {
	if b.size == 0 {
		return x, true
	}
	b.values = append(b.values, x)
	if len(b.values) > b.size {
		evicted := b.values[0]
		b.values = b.values[1:]
		return evicted, true
	}
	return 0, false
}

// Get returns a copy of the buffer elements in the order they were added.
func (b *Buffer) Get() []float64 {
	vv := make([]float64, len(b.values))
	copy(vv, b.values)
	return vv
}
