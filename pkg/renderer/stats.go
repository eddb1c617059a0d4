package renderer

import (
	"sort"
	"time"
)

// RenderStats contains statistics about a probe pass
type RenderStats struct {
	Rays         int            // Primary rays cast
	Hits         int            // Rays that hit a shape
	MaterialHits map[string]int // Hits keyed by material name
	Duration     time.Duration  // Wall time of the pass
}

// recordHit counts a hit against the named material
func (rs *RenderStats) recordHit(material string) {
	rs.Hits++
	if rs.MaterialHits == nil {
		rs.MaterialHits = make(map[string]int)
	}
	rs.MaterialHits[material]++
}

// Merge adds the counts of other into rs. Duration is left alone.
func (rs *RenderStats) Merge(other RenderStats) {
	rs.Rays += other.Rays
	rs.Hits += other.Hits
	for name, n := range other.MaterialHits {
		if rs.MaterialHits == nil {
			rs.MaterialHits = make(map[string]int)
		}
		rs.MaterialHits[name] += n
	}
}

// HitRatio returns the fraction of rays that hit something
func (rs RenderStats) HitRatio() float64 {
	if rs.Rays == 0 {
		return 0
	}
	return float64(rs.Hits) / float64(rs.Rays)
}

// MaterialNames returns the names of materials that were hit, sorted
func (rs RenderStats) MaterialNames() []string {
	names := make([]string, 0, len(rs.MaterialHits))
	for name := range rs.MaterialHits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
