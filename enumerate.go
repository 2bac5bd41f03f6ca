package wayfinder

// visit is what the enumerator does with a single node.
type visit uint8

const (
	visitPrune   visit = iota // skip the node and its subtree
	visitCollect              // take the node, skip its subtree
	visitDescend              // search the node's children
)

func (nv *Navigator[N]) classify(n, excluded N, hasExcluded bool) visit {
	if hasExcluded && n == excluded {
		return visitPrune
	}
	if !nv.graph.IsVisible(n) {
		return visitPrune
	}
	if nv.graph.IsFocusable(n) {
		return visitCollect
	}
	return visitDescend
}

// appendCandidates walks root's subtree depth-first with an explicit stack.
// The stack holds the next node to visit at each open level, so its size is
// bounded by tree depth rather than node count.
func (nv *Navigator[N]) appendCandidates(dst []Candidate[N], root, excluded N, hasExcluded bool) []Candidate[N] {
	first, ok := nv.graph.FirstChild(root)
	if !ok {
		return dst
	}
	stack := append(nv.stack[:0], first)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Siblings are pushed before children so the subtree is finished first.
		if next, ok := nv.graph.NextSibling(n); ok {
			stack = append(stack, next)
		}
		switch nv.classify(n, excluded, hasExcluded) {
		case visitCollect:
			dst = append(dst, Candidate[N]{Node: n, Rect: nv.graph.GlobalRect(n).Canon()})
		case visitDescend:
			if child, ok := nv.graph.FirstChild(n); ok {
				stack = append(stack, child)
			}
		}
	}
	nv.stack = stack[:0]
	return dst
}
