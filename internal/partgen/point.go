package partgen

// Point2 represents a point in the plane.
type Point2 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

// Dist2 returns the squared Euclidean distance to q.
func (p Point2) Dist2(q Point2) Real {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Point3 represents a point in 3-dimensional space.
type Point3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Dist2 returns the squared Euclidean distance to q.
func (p Point3) Dist2(q Point3) Real {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

func (p Point2) finite() bool { return isFinite(p.X) && isFinite(p.Y) }
func (p Point3) finite() bool { return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z) }
