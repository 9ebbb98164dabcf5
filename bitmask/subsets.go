package bitmask

// Subsets calls yield with every k-element subset of universe, in
// increasing numeric order, until yield returns false.
// k = 0 yields the empty set once; k < 0 or k > universe.Len() yields nothing.
func Subsets(universe Set, k int, yield func(Set) bool) {
	n := universe.Len()
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		yield(0)
		return
	}

	// Gosper's hack enumerates k-bit ranks over [0, n); deposit maps rank
	// bits onto the members of universe, which keeps the order.
	members := universe.Members()
	c := uint64(1)<<uint(k) - 1
	last := c << uint(n-k)
	for {
		if !yield(deposit(c, members)) {
			return
		}
		if c == last {
			return
		}
		u := c & -c
		v := c + u
		c = v + ((v^c)/u)>>2
	}
}

func deposit(ranks uint64, members []int) Set {
	var s Set
	for j, m := range members {
		if ranks&(1<<uint(j)) != 0 {
			s.Add(m)
		}
	}

	return s
}
