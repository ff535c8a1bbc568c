package report

import (
	"github.com/katalvlaran/robopath/dijkstra"
	"github.com/katalvlaran/robopath/gridgraph"
)

// Cell is one grid cell as shown to a reader.
type Cell struct {
	Cost  int64 `yaml:"cost"`
	Start bool  `yaml:"start,omitempty"`
	End   bool  `yaml:"end,omitempty"`
}

// Step is one position along the path. Corner is false for the start cell
// even when the start is a corner.
type Step struct {
	Index  int                  `yaml:"index"`
	Coord  gridgraph.Coordinate `yaml:"coord"`
	Corner bool                 `yaml:"corner,omitempty"`
	Start  bool                 `yaml:"start,omitempty"`
	End    bool                 `yaml:"end,omitempty"`
}

// Report is everything needed to present one search.
type Report struct {
	Size      int                    `yaml:"size"`
	Start     gridgraph.Coordinate   `yaml:"start"`
	End       gridgraph.Coordinate   `yaml:"end"`
	Found     bool                   `yaml:"found"`
	TotalCost *int64                 `yaml:"total_cost,omitempty"`
	StepCount int                    `yaml:"step_count"`
	Steps     []Step                 `yaml:"steps"`
	Corners   []gridgraph.Coordinate `yaml:"visited_corners"`
	Grid      [][]Cell               `yaml:"grid"`
}

// Build assembles a Report. When res is not found, TotalCost is nil and
// Steps is empty; Found carries the unreachable state. A found search
// always has a non-nil TotalCost, including 0 when start equals end.
func Build(g *gridgraph.GridGraph, start, end gridgraph.Coordinate, res dijkstra.Result) Report {
	rep := Report{
		Size:    g.Size(),
		Start:   start,
		End:     end,
		Found:   res.Found(),
		Steps:   []Step{},
		Corners: append([]gridgraph.Coordinate{}, res.VisitedCorners...),
		Grid:    make([][]Cell, g.Size()),
	}
	for r := range rep.Grid {
		rep.Grid[r] = make([]Cell, g.Size())
		for c := range rep.Grid[r] {
			here := gridgraph.At(r, c)
			rep.Grid[r][c] = Cell{Cost: g.Cost(r, c), Start: here == start, End: here == end}
		}
	}
	if !rep.Found {
		return rep
	}

	cost := res.TotalCost
	rep.TotalCost = &cost
	rep.StepCount = res.Steps()
	for i, pos := range res.Path {
		rep.Steps = append(rep.Steps, Step{
			Index:  i,
			Coord:  pos,
			Corner: g.IsCorner(pos.Row, pos.Col) && pos != start,
			Start:  pos == start,
			End:    pos == end,
		})
	}

	return rep
}
