package img2ascii

import (
	"sort"

	"github.com/wbrown/img2ascii/imageutil"
)

// paletteEntry is a terminal color and its palette code.
type paletteEntry struct {
	Color imageutil.RGB
	Code  uint8
}

// colorNode is a node of a KD-tree over RGB colors. Each node splits its
// subtree along the channel with the largest variance.
type colorNode struct {
	entry       paletteEntry
	left, right *colorNode
	axis        int
}

// buildKDTree constructs a KD-tree from entries. The slice is reordered.
func buildKDTree(entries []paletteEntry) *colorNode {
	if len(entries) == 0 {
		return nil
	}

	axis := chooseSplitAxis(entries)
	sort.Slice(entries, func(i, j int) bool {
		return component(entries[i].Color, axis) < component(entries[j].Color, axis)
	})

	median := len(entries) / 2
	return &colorNode{
		entry: entries[median],
		left:  buildKDTree(entries[:median]),
		right: buildKDTree(entries[median+1:]),
		axis:  axis,
	}
}

// chooseSplitAxis returns the channel (0 R, 1 G, 2 B) with the largest
// variance.
func chooseSplitAxis(entries []paletteEntry) int {
	var mean, variance [3]float64
	for _, e := range entries {
		for axis := range mean {
			mean[axis] += float64(component(e.Color, axis))
		}
	}
	for axis := range mean {
		mean[axis] /= float64(len(entries))
	}
	for _, e := range entries {
		for axis := range variance {
			d := float64(component(e.Color, axis)) - mean[axis]
			variance[axis] += d * d
		}
	}

	if variance[0] > variance[1] && variance[0] > variance[2] {
		return 0
	} else if variance[1] > variance[2] {
		return 1
	}
	return 2
}

func component(c imageutil.RGB, axis int) uint8 {
	switch axis {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// distanceSq is the squared Euclidean distance between two colors.
func distanceSq(a, b imageutil.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// nearest returns the entry closest to target. Ties keep the entry found
// first.
func (node *colorNode) nearest(target imageutil.RGB) paletteEntry {
	best, bestDist := node.entry, distanceSq(node.entry.Color, target)
	node.search(target, &best, &bestDist)
	return best
}

func (node *colorNode) search(target imageutil.RGB, best *paletteEntry, bestDist *int) {
	if node == nil {
		return
	}

	if dist := distanceSq(node.entry.Color, target); dist < *bestDist {
		*best, *bestDist = node.entry, dist
	}

	axisDist := int(component(target, node.axis)) - int(component(node.entry.Color, node.axis))
	next, other := node.right, node.left
	if axisDist < 0 {
		next, other = node.left, node.right
	}

	next.search(target, best, bestDist)
	// The other side can only hold a closer color if the splitting plane
	// is nearer than the best match.
	if axisDist*axisDist < *bestDist {
		other.search(target, best, bestDist)
	}
}
