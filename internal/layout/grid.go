package layout

import (
	"fmt"
	"math"

	"github.com/bnema/memory-garden/internal/domain"
)

const (
	DefaultRows       = 11
	DefaultCols       = 10
	DefaultSpacingX   = 3.0
	DefaultSpacingZ   = 4.0
	DefaultRingRadius = 2.0
)

// Grid assigns clusters to cells of a Rows x Cols lattice centred on the origin.
type Grid struct {
	Rows       int
	Cols       int
	SpacingX   float64
	SpacingZ   float64
	RingRadius float64
	// Reserved cells are never handed to a cluster.
	Reserved []domain.Cell
}

func DefaultGrid() Grid {
	return Grid{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		SpacingX:   DefaultSpacingX,
		SpacingZ:   DefaultSpacingZ,
		RingRadius: DefaultRingRadius,
	}
}

func (g Grid) Capacity() int {
	return g.Rows * g.Cols
}

func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", g.Rows, g.Cols)
	}
	if g.SpacingX <= 0 || g.SpacingZ <= 0 {
		return fmt.Errorf("grid spacing must be positive, got %vx%v", g.SpacingX, g.SpacingZ)
	}
	if g.RingRadius < 0 {
		return fmt.Errorf("ring radius must not be negative, got %v", g.RingRadius)
	}

	return nil
}

// Placement is the outcome of Grid.Place.
type Placement struct {
	Clusters []domain.Cluster
	// Overflow holds the clusters that did not fit, in input order.
	Overflow []domain.Cluster
	Dropped  int
}

// WorldPosition is the centre of a cell in world coordinates.
func (g Grid) WorldPosition(cell domain.Cell) domain.Vec3 {
	return domain.Vec3{
		float64(cell.Col)*g.SpacingX - float64(g.Cols)*g.SpacingX/2,
		0,
		float64(cell.Row)*g.SpacingZ - float64(g.Rows)*g.SpacingZ/2,
	}
}

// Place scans the grid row by row and gives each cluster the next free cell.
// Center positions from clustering are overwritten and members are laid out
// again around the new centre. Clusters left when the grid runs out of cells
// are reported in Overflow.
func (g Grid) Place(clusters []domain.Cluster) Placement {
	occupied := make(map[string]struct{}, len(clusters)+len(g.Reserved))
	for _, cell := range g.Reserved {
		occupied[cell.Key()] = struct{}{}
	}

	placement := Placement{Clusters: make([]domain.Cluster, 0, len(clusters))}
	if g.Rows <= 0 || g.Cols <= 0 {
		placement.Overflow = append(placement.Overflow, clusters...)
		placement.Dropped = len(clusters)
		return placement
	}

	cursor := domain.Cell{}

	for i, cluster := range clusters {
		for cursor.Row < g.Rows {
			if _, taken := occupied[cursor.Key()]; !taken {
				break
			}
			cursor = g.advance(cursor)
		}

		if cursor.Row >= g.Rows {
			placement.Overflow = append(placement.Overflow, clusters[i:]...)
			placement.Dropped = len(clusters) - i
			break
		}

		occupied[cursor.Key()] = struct{}{}
		cell := cursor
		cluster.Cell = &cell
		cluster.CenterPosition = g.WorldPosition(cell)
		cluster.Flowers = g.ring(cluster.CenterPosition, cluster.Flowers)
		placement.Clusters = append(placement.Clusters, cluster)

		cursor = g.advance(cursor)
	}

	return placement
}

func (g Grid) advance(c domain.Cell) domain.Cell {
	c.Col++
	if c.Col == g.Cols {
		c.Col = 0
		c.Row++
	}

	return c
}

// ring puts a single flower on the centre and spreads more than one evenly on
// a circle of RingRadius around it.
func (g Grid) ring(center domain.Vec3, flowers []domain.Flower) []domain.Flower {
	placed := make([]domain.Flower, len(flowers))
	copy(placed, flowers)

	if len(placed) == 1 {
		placed[0].Position = center
		return placed
	}

	count := float64(len(placed))
	for i := range placed {
		angle := float64(i) / count * 2 * math.Pi
		placed[i].Position = domain.Vec3{
			center.X() + g.RingRadius*math.Cos(angle),
			0,
			center.Z() + g.RingRadius*math.Sin(angle),
		}
	}

	return placed
}
