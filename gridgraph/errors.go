package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNilImage indicates a nil pixel source, sink, or seam graph.
	ErrNilImage = errors.New("gridgraph: image must not be nil")
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimensionMismatch indicates source, target, or output grids differ in size.
	ErrDimensionMismatch = errors.New("gridgraph: grid dimensions differ")
	// ErrSeedOutOfBounds indicates a seed rectangle that is inverted or leaves the grid.
	ErrSeedOutOfBounds = errors.New("gridgraph: seed rectangle out of bounds")
	// ErrSeedOverlap indicates a pixel inside both seeds, which would join
	// source and sink by an infinite path.
	ErrSeedOverlap = errors.New("gridgraph: source and sink seeds overlap")
	// ErrUnknownLabeling indicates a Labeling value outside the defined set.
	ErrUnknownLabeling = errors.New("gridgraph: unknown labeling")
	// ErrSideLength indicates a side slice whose length differs from the pixel count.
	ErrSideLength = errors.New("gridgraph: side slice length must equal Width×Height")
)
