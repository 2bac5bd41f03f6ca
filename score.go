package wayfinder

import "math"

// InDirection reports whether c lies on the requested side of the origin,
// allowing eps of overlap between the facing edges.
func InDirection(req NavigationRequest, c Rect, eps float64) bool {
	oMin, oMax := req.Origin.span(req.Axis)
	cMin, cMax := c.span(req.Axis)
	if req.Direction == Backward {
		return cMax-eps <= oMin
	}
	return cMin+eps >= oMax
}

// PrimaryDistance is the gap between the facing edges along the move axis.
func PrimaryDistance(req NavigationRequest, c Rect) float64 {
	oMin, oMax := req.Origin.span(req.Axis)
	cMin, cMax := c.span(req.Axis)
	if req.Direction == Backward {
		return math.Abs(cMax - oMin)
	}
	return math.Abs(cMin - oMax)
}

// OrthogonalDistance is 0 when the two rectangles overlap on the axis
// perpendicular to the move, and the distance between their midpoints on
// that axis otherwise.
func OrthogonalDistance(req NavigationRequest, c Rect) float64 {
	axis := req.Axis.other()
	aMin, aMax := req.Origin.span(axis)
	bMin, bMax := c.span(axis)
	if intervalsOverlap(aMin, aMax, bMin, bMax) {
		return 0
	}
	return math.Abs(req.Origin.Center().along(axis) - c.Center().along(axis))
}

// intervalsOverlap tests open intervals via their Minkowski difference
// [aMin-bMax, aMax-bMin]: they intersect iff it strictly contains zero.
func intervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	lo := aMin - bMax
	hi := aMax - bMin
	return lo < 0 && hi > 0
}

// Select picks the best candidate for req. Candidates not on the requested
// side are ignored. A smaller primary distance wins when it is more than eps
// closer; otherwise a smaller orthogonal distance wins. Remaining ties keep
// the earliest candidate.
func Select[N comparable](cands []Candidate[N], req NavigationRequest, eps float64) (Candidate[N], bool) {
	var (
		best              Candidate[N]
		bestPrim, bestOrt float64
		found             bool
	)
	for _, c := range cands {
		if !InDirection(req, c.Rect, eps) {
			continue
		}
		prim := PrimaryDistance(req, c.Rect)
		ort := OrthogonalDistance(req, c.Rect)
		if !found || better(prim, ort, bestPrim, bestOrt, eps) {
			best, bestPrim, bestOrt, found = c, prim, ort, true
		}
	}
	return best, found
}

func better(prim, ort, bestPrim, bestOrt, eps float64) bool {
	if prim < bestPrim-eps {
		return true
	}
	if math.Abs(prim-bestPrim) <= eps {
		return ort < bestOrt-eps
	}
	return false
}
