// Package scan provides the up-right diagonal scan orders and the
// coefficient sub-block geometry used by residual coding.
//
// All tables are built once at package initialisation and never modified,
// so they may be shared freely between goroutines.
package scan

// MaxLog2 is the largest coded transform extent (32) along either axis.
const MaxLog2 = 5

// Pos is a position inside a block, in samples.
type Pos struct {
	X, Y uint8
}

// Shape identifies the coefficient sub-block shape.
type Shape uint8

const (
	ShapeInvalid Shape = iota
	Shape4x4
	Shape2x8
	Shape8x2
	Shape1x16
	Shape16x1
	Shape2x2
)

var shapeNames = [...]string{"invalid", "4x4", "2x8", "8x2", "1x16", "16x1", "2x2"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Geometry describes how a transform block of a given coded size splits into
// sub-blocks and the order in which coefficients are visited.
type Geometry struct {
	Shape Shape

	Log2W, Log2H     int // coded transform extent
	Log2SbW, Log2SbH int // sub-block size
	Log2GridW        int // sub-blocks per row (log2)
	Log2GridH        int // sub-blocks per column (log2)
	NumCoeff         int // coefficients per sub-block
	NumSubBlocks     int

	// Scan maps a scan position inside a sub-block to its position.
	Scan []Pos
	// Inverse maps a raster index (y<<Log2SbW | x) inside a sub-block to
	// its scan position.
	Inverse [16]uint8

	// Grid maps a sub-block scan index to the sub-block position in the grid.
	Grid []Pos
	// GridInverse maps a raster grid index (yS<<Log2GridW | xS) to the
	// sub-block scan index.
	GridInverse []uint16
}

// SubBlock returns the sub-block position of sub-block scan index i.
func (g *Geometry) SubBlock(i int) (xS, yS int) {
	p := g.Grid[i]
	return int(p.X), int(p.Y)
}

// Origin returns the coefficient position of the top-left corner of
// sub-block scan index i.
func (g *Geometry) Origin(i int) (x0, y0 int) {
	p := g.Grid[i]
	return int(p.X) << g.Log2SbW, int(p.Y) << g.Log2SbH
}

// Locate returns the sub-block scan index and the scan position inside that
// sub-block of coefficient (x, y).
func (g *Geometry) Locate(x, y int) (sb, pos int) {
	xS, yS := x>>g.Log2SbW, y>>g.Log2SbH
	sb = int(g.GridInverse[yS<<g.Log2GridW|xS])
	xs, ys := x&(1<<g.Log2SbW-1), y&(1<<g.Log2SbH-1)
	pos = int(g.Inverse[ys<<g.Log2SbW|xs])
	return sb, pos
}

var (
	diagTables [MaxLog2 + 1][MaxLog2 + 1][]Pos
	geometries [MaxLog2 + 1][MaxLog2 + 1]*Geometry
)

func init() {
	for lw := 0; lw <= MaxLog2; lw++ {
		for lh := 0; lh <= MaxLog2; lh++ {
			diagTables[lw][lh] = buildDiag(1<<lw, 1<<lh)
		}
	}
	for lw := 0; lw <= MaxLog2; lw++ {
		for lh := 0; lh <= MaxLog2; lh++ {
			geometries[lw][lh] = buildGeometry(lw, lh)
		}
	}
}

// buildDiag generates the up-right diagonal scan: anti-diagonals from the
// top-left corner, each walked from bottom-left to top-right.
func buildDiag(w, h int) []Pos {
	out := make([]Pos, 0, w*h)
	x, y := 0, 0
	for len(out) < w*h {
		for y >= 0 {
			if x < w && y < h {
				out = append(out, Pos{uint8(x), uint8(y)})
			}
			y--
			x++
		}
		y = x
		x = 0
	}
	return out
}

// Diag returns the diagonal scan of a (1<<log2W) x (1<<log2H) block.
// The returned slice must not be modified.
func Diag(log2W, log2H int) []Pos {
	return diagTables[log2W][log2H]
}

// SubBlockSize returns the log2 sub-block dimensions for a coded transform
// extent, or ok == false when no sub-block fits.
func SubBlockSize(log2W, log2H int) (log2SbW, log2SbH int, ok bool) {
	log2SbW, log2SbH = 2, 2
	if min(log2W, log2H) < 2 {
		log2SbW, log2SbH = 1, 1
	}
	if log2W+log2H > 3 {
		if log2W < 2 {
			log2SbW = log2W
			log2SbH = 4 - log2SbW
		} else if log2H < 2 {
			log2SbH = log2H
			log2SbW = 4 - log2SbH
		}
	}
	ok = log2SbW <= log2W && log2SbH <= log2H
	return log2SbW, log2SbH, ok
}

func shapeOf(log2SbW, log2SbH int) Shape {
	switch {
	case log2SbW == 2 && log2SbH == 2:
		return Shape4x4
	case log2SbW == 1 && log2SbH == 3:
		return Shape2x8
	case log2SbW == 3 && log2SbH == 1:
		return Shape8x2
	case log2SbW == 0 && log2SbH == 4:
		return Shape1x16
	case log2SbW == 4 && log2SbH == 0:
		return Shape16x1
	case log2SbW == 1 && log2SbH == 1:
		return Shape2x2
	}
	return ShapeInvalid
}

func buildGeometry(log2W, log2H int) *Geometry {
	sbw, sbh, ok := SubBlockSize(log2W, log2H)
	if !ok {
		return nil
	}
	g := &Geometry{
		Shape:     shapeOf(sbw, sbh),
		Log2W:     log2W,
		Log2H:     log2H,
		Log2SbW:   sbw,
		Log2SbH:   sbh,
		Log2GridW: log2W - sbw,
		Log2GridH: log2H - sbh,
		NumCoeff:  1 << (sbw + sbh),
		Scan:      diagTables[sbw][sbh],
		Grid:      diagTables[log2W-sbw][log2H-sbh],
	}
	g.NumSubBlocks = len(g.Grid)
	for n, p := range g.Scan {
		g.Inverse[int(p.Y)<<sbw|int(p.X)] = uint8(n)
	}
	g.GridInverse = make([]uint16, g.NumSubBlocks)
	for i, p := range g.Grid {
		g.GridInverse[int(p.Y)<<g.Log2GridW|int(p.X)] = uint16(i)
	}
	return g
}

// Select returns the geometry for a coded transform extent. It returns nil
// for extents outside [0, MaxLog2] or with no valid sub-block split.
func Select(log2W, log2H int) *Geometry {
	if log2W < 0 || log2H < 0 || log2W > MaxLog2 || log2H > MaxLog2 {
		return nil
	}
	return geometries[log2W][log2H]
}

// Valid reports whether Select returns a geometry for the extent.
func Valid(log2W, log2H int) bool {
	return Select(log2W, log2H) != nil
}
