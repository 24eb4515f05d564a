package model

// TagCounts counts occurrences per tag while preserving first-seen order, so
// report output is deterministic for a given input.
type TagCounts struct {
	counts map[string]int
	order  []string
}

// NewTagCounts creates an empty TagCounts.
func NewTagCounts() *TagCounts {
	return &TagCounts{counts: make(map[string]int)}
}

// Inc increments the count for tag, registering it on first sight.
func (c *TagCounts) Inc(tag string) {
	if _, ok := c.counts[tag]; !ok {
		c.order = append(c.order, tag)
	}
	c.counts[tag]++
}

// Get returns the count for tag, zero if it was never seen.
func (c *TagCounts) Get(tag string) int {
	return c.counts[tag]
}

// Tags returns all tags in first-seen order.
func (c *TagCounts) Tags() []string {
	return c.order
}

// Total returns the sum of all tag counts.
func (c *TagCounts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// PairCounts counts occurrences per (port, protocol) combination while
// preserving first-seen order.
type PairCounts struct {
	counts map[LookupKey]int
	order  []LookupKey
}

// NewPairCounts creates an empty PairCounts.
func NewPairCounts() *PairCounts {
	return &PairCounts{counts: make(map[LookupKey]int)}
}

// Inc increments the count for key, registering it on first sight.
func (c *PairCounts) Inc(key LookupKey) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Get returns the count for key, zero if it was never seen.
func (c *PairCounts) Get(key LookupKey) int {
	return c.counts[key]
}

// Keys returns all keys in first-seen order.
func (c *PairCounts) Keys() []LookupKey {
	return c.order
}

// Total returns the sum of all pair counts.
func (c *PairCounts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}
