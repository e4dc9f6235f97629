// Package seamcut finds minimum-cost seams between two overlapping images by
// solving maximum flow / minimum cut over a pixel grid, the core technique of
// graph-cut texture synthesis and seamless image blending.
//
// 🚀 What is seamcut?
//
//	A small, focused stack:
//		• Residual graph: edge arena with paired reverse edges, exact int64 accounting
//		• Path search: sequential BFS and a concurrent wave-by-wave frontier search
//		• Max flow: Edmonds–Karp driver with augmentation hooks and min-cut extraction
//		• Grid seams: pixel grid → flow network → composite image
//
// ✨ Why seamcut?
//
//   - Exact: integer capacities, explicit Unbounded sentinel, overflow guarded
//   - Parallel: strict BFS layers on an ants worker pool keep paths shortest
//   - Pluggable: any PixelSource in, any PixelSink out, any PathFinder in between
//
// Under the hood, everything is organized under two packages:
//
//	flow/      : ResidualGraph, BFS, ConcurrentSearch, Solver / EdmondsKarp, MinCut
//	gridgraph/ : Build, Classify, Composite, Regions, image adapters
//
// The cmd/seamcut driver loads two images, builds the seam network, solves it
// and writes the composite:
//
//	    source seed │ seam │ sink seed
//	    S S S S S S ┃ T T T T T T
//	    S S S S S ┃ T T T T T T T
//
//	go install github.com/katalvlaran/seamcut/cmd/seamcut@latest
package seamcut
