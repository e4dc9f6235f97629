package gridgraph

// MaxEdgeWeight is the largest value EdgeWeight can return (3 × 255).
const MaxEdgeWeight int64 = 765

// EdgeWeight is the capacity of a grid edge: the sum of absolute per-channel
// differences between a and b, in [0, MaxEdgeWeight].
func EdgeWeight(a, b Color) int64 {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int64 {
	if a > b {
		return int64(a - b)
	}
	return int64(b - a)
}
