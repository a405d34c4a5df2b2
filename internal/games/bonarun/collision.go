package bonarun

// Intersects reports whether the player overlaps the obstacle.
func Intersects(p Player, o Obstacle) bool {
	return p.Rect().Intersects(o.Rect())
}
