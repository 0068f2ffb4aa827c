package contour

// Chain joins segments that share a slot into slot sequences. Every slot
// touches at most two segments, since an edge borders at most two triangles
// and each triangle emits at most one segment. Open chains come first, each
// starting at an end slot; closed loops repeat their first slot at the end.
func Chain(segments []uint32) [][]uint32 {
	n := len(segments) / 2
	if n == 0 {
		return nil
	}
	adj := make(map[uint32][]int, n*2)
	for k := 0; k < n; k++ {
		a, b := segments[2*k], segments[2*k+1]
		adj[a] = append(adj[a], k)
		adj[b] = append(adj[b], k)
	}

	used := make([]bool, n)
	var out [][]uint32
	walk := func(start uint32, seg int) []uint32 {
		chain := []uint32{start}
		cur := start
		for seg >= 0 && !used[seg] {
			used[seg] = true
			a, b := segments[2*seg], segments[2*seg+1]
			next := a
			if a == cur {
				next = b
			}
			chain = append(chain, next)
			cur = next
			seg = -1
			for _, s := range adj[cur] {
				if !used[s] {
					seg = s
					break
				}
			}
		}
		return chain
	}

	// open chains from their ends, in segment order for stable output
	for k := 0; k < n; k++ {
		for _, s := range segments[2*k : 2*k+2] {
			if len(adj[s]) == 1 && !used[k] {
				out = append(out, walk(s, k))
			}
		}
	}
	for k := 0; k < n; k++ {
		if !used[k] {
			out = append(out, walk(segments[2*k], k))
		}
	}
	return out
}

// Resolve maps slot chains to point sequences through pool.
func Resolve(pool [][2]float64, chains [][]uint32) [][][2]float64 {
	out := make([][][2]float64, len(chains))
	for i, c := range chains {
		line := make([][2]float64, len(c))
		for k, s := range c {
			line[k] = pool[s]
		}
		out[i] = line
	}
	return out
}
