package simplex

// Counts accumulates primitive-operation totals across the five
// categories tracked for empirical complexity measurement. A nil
// *Counts is valid everywhere one is accepted and records nothing,
// so the solving code paths are identical with and without counting.
type Counts struct {
	Comparisons uint64 // x > y, loop conditions
	Assignments uint64 // v = 0
	Arithmetic  uint64 // add, subtract, multiply, divide
	Accesses    uint64 // element reads/writes through the tableau
	Calls       uint64 // routine invocations
}

// Total returns the sum over the five categories.
func (c *Counts) Total() uint64 {
	if c == nil {
		return 0
	}
	return c.Comparisons + c.Assignments + c.Arithmetic + c.Accesses + c.Calls
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	if c == nil {
		return
	}
	c.Comparisons += other.Comparisons
	c.Assignments += other.Assignments
	c.Arithmetic += other.Arithmetic
	c.Accesses += other.Accesses
	c.Calls += other.Calls
}

// Reset zeroes every category.
func (c *Counts) Reset() {
	if c == nil {
		return
	}
	*c = Counts{}
}

// nil-safe increment helpers used by the solving code.

func (c *Counts) compare(n int) {
	if c != nil {
		c.Comparisons += uint64(n)
	}
}

func (c *Counts) assign(n int) {
	if c != nil {
		c.Assignments += uint64(n)
	}
}

func (c *Counts) arith(n int) {
	if c != nil {
		c.Arithmetic += uint64(n)
	}
}

func (c *Counts) access(n int) {
	if c != nil {
		c.Accesses += uint64(n)
	}
}

func (c *Counts) call(n int) {
	if c != nil {
		c.Calls += uint64(n)
	}
}
