package grid

// Region returns every walkable position reachable from p by orthogonal
// steps, in BFS order starting with p itself. Headings and turn costs are
// ignored. A non-walkable p yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Region(t Terrain, p Position) []Position {
	if !t.Open(p) {
		return nil
	}
	cols := t.Cols()
	seen := make([]bool, t.Rows()*cols)
	seen[p.Row*cols+p.Col] = true
	queue := []Position{p}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, h := range Headings {
			v := u.Add(h.Delta())
			if !t.Open(v) {
				continue
			}
			vi := v.Row*cols + v.Col
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Connected reports whether b can be reached from a by orthogonal steps over
// walkable cells. It stops as soon as b is found.
// Time: O(W·H) worst case.
func Connected(t Terrain, a, b Position) bool {
	if !t.Open(a) || !t.Open(b) {
		return false
	}
	if a == b {
		return true
	}
	cols := t.Cols()
	seen := make([]bool, t.Rows()*cols)
	seen[a.Row*cols+a.Col] = true
	queue := []Position{a}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, h := range Headings {
			v := u.Add(h.Delta())
			if v == b {
				return true
			}
			if !t.Open(v) {
				continue
			}
			vi := v.Row*cols + v.Col
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
