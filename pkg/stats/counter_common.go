package stats

func (c *Counter) Tick(count uint32) {
	c.count += uint64(count)
}

func (c *AtomicCounter) Tick(count uint32) {
	c.count.Add(uint64(count))
}
