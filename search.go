package geostat

import (
	"fmt"
	"math"
	"sort"
)

// DefaultSectors is the conventional quadrant partition for sector-limited
// searches.
const DefaultSectors = 4

// SearchParams bounds which samples condition an estimate. Zero values relax
// the corresponding limit: MaxDistance <= 0 is an unbounded radius,
// MaxPerSector <= 0 keeps every candidate in a sector, Sectors <= 0 disables
// sector partitioning entirely.
type SearchParams struct {
	MaxDistance  float64 `json:"max_distance"`
	MinNeighbors int     `json:"min_neighbors"`
	MaxPerSector int     `json:"max_per_sector"`
	Sectors      int     `json:"sectors"`
}

// Neighbor references one selected sample by index into the sample slice,
// with its plain Euclidean distance to the estimation point. Search results
// are sorted nearest first, ties broken by index.
type Neighbor struct {
	Index    int
	Distance float64
}

// Searcher selects the conditioning subset for estimation locations against
// a fixed sample set. Search distances are plain Euclidean, independent of
// any variogram anisotropy. A Searcher is safe for concurrent use as long as
// each goroutine passes its own scratch buffer.
type Searcher struct {
	samples []SamplePoint
	params  SearchParams
	index   *sampleIndex
}

// Sample sets below this size are scanned directly; the kd-tree only pays
// off once the per-cell scan dominates.
const indexThreshold = 64

func NewSearcher(samples []SamplePoint, params SearchParams) (*Searcher, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if params.MinNeighbors < 0 {
		return nil, fmt.Errorf("%w: min neighbors=%d", ErrInvalidParams, params.MinNeighbors)
	}
	s := &Searcher{samples: samples, params: params}
	if len(samples) >= indexThreshold && params.MaxDistance > 0 {
		s.index = newSampleIndex(samples)
	}
	return s, nil
}

// Search returns the neighbors conditioning (x, y), appended into buf.
// It returns ErrNoNeighbors when no candidate survives the distance and
// sector filters or fewer than MinNeighbors remain; the caller decides the
// missing-value policy.
func (s *Searcher) Search(x, y float64, buf []Neighbor) ([]Neighbor, error) {
	cand := buf[:0]
	if s.index != nil {
		cand = s.index.within(x, y, s.params.MaxDistance, cand)
	} else {
		for i := range s.samples {
			d := math.Hypot(s.samples[i].X-x, s.samples[i].Y-y)
			if s.params.MaxDistance > 0 && d > s.params.MaxDistance {
				continue
			}
			cand = append(cand, Neighbor{Index: i, Distance: d})
		}
	}
	sortNeighbors(cand)
	if s.params.Sectors > 0 && s.params.MaxPerSector > 0 {
		cand = capSectors(x, y, s.samples, cand, s.params.Sectors, s.params.MaxPerSector)
	}
	if len(cand) == 0 {
		return cand, ErrNoNeighbors
	}
	if len(cand) < s.params.MinNeighbors {
		return cand, fmt.Errorf("%w: %d found, %d required", ErrNoNeighbors, len(cand), s.params.MinNeighbors)
	}
	return cand, nil
}

func sortNeighbors(nb []Neighbor) {
	sort.Slice(nb, func(i, j int) bool {
		if nb[i].Distance == nb[j].Distance {
			return nb[i].Index < nb[j].Index
		}
		return nb[i].Distance < nb[j].Distance
	})
}

// capSectors keeps at most maxPer nearest candidates per angular sector
// around the estimation point. cand must already be sorted nearest first;
// the kept subset preserves that order.
func capSectors(x, y float64, samples []SamplePoint, cand []Neighbor, sectors, maxPer int) []Neighbor {
	counts := make([]int, sectors)
	width := 2 * math.Pi / float64(sectors)
	kept := cand[:0]
	for _, nb := range cand {
		sp := samples[nb.Index]
		ang := math.Atan2(sp.Y-y, sp.X-x)
		if ang < 0 {
			ang += 2 * math.Pi
		}
		sec := int(ang / width)
		if sec >= sectors {
			sec = sectors - 1
		}
		if counts[sec] >= maxPer {
			continue
		}
		counts[sec]++
		kept = append(kept, nb)
	}
	return kept
}
