package scene

import (
	"sort"

	"github.com/Faultbox/labelsphere/internal/globe"
	"github.com/Faultbox/labelsphere/pkg/math"
)

// backToFront appends billboard indices to dst, farthest from camPos first.
// Ties keep their original order.
func backToFront(dst []int, billboards []globe.Billboard, camPos math.Vec3) []int {
	for i := range billboards {
		dst = append(dst, i)
	}
	sort.SliceStable(dst, func(a, b int) bool {
		da := billboards[dst[a]].World.Distance(camPos)
		db := billboards[dst[b]].World.Distance(camPos)
		return da > db
	})
	return dst
}
