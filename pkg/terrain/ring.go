package terrain

// chunkDeque is a fixed-capacity ring buffer of chunks with O(1) push and
// pop at both ends. The window rotates its chunk pool through it without
// reallocating.
type chunkDeque struct {
	buf  []*Chunk
	head int
	size int
}

func newChunkDeque(capacity int) *chunkDeque {
	return &chunkDeque{buf: make([]*Chunk, capacity)}
}

func (d *chunkDeque) len() int { return d.size }

func (d *chunkDeque) pushBack(c *Chunk) bool {
	if d.size == len(d.buf) {
		return false
	}
	d.buf[(d.head+d.size)%len(d.buf)] = c
	d.size++
	return true
}

func (d *chunkDeque) pushFront(c *Chunk) bool {
	if d.size == len(d.buf) {
		return false
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = c
	d.size++
	return true
}

func (d *chunkDeque) popFront() *Chunk {
	if d.size == 0 {
		return nil
	}
	c := d.buf[d.head]
	d.buf[d.head] = nil
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return c
}

func (d *chunkDeque) popBack() *Chunk {
	if d.size == 0 {
		return nil
	}
	i := (d.head + d.size - 1) % len(d.buf)
	c := d.buf[i]
	d.buf[i] = nil
	d.size--
	return c
}

// at returns the i-th chunk from the front without removing it.
func (d *chunkDeque) at(i int) *Chunk {
	if i < 0 || i >= d.size {
		return nil
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

func (d *chunkDeque) front() *Chunk { return d.at(0) }

func (d *chunkDeque) back() *Chunk { return d.at(d.size - 1) }
