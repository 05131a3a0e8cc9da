package shiftseq_test

import (
	"testing"

	"github.com/katalvlaran/gearshift/cogs"
	"github.com/katalvlaran/gearshift/ratiotable"
	"github.com/katalvlaran/gearshift/shiftseq"
)

// benchmarkPlan plans from origin toward target on a 3×12 drivetrain.
func benchmarkPlan(b *testing.B, origin ratiotable.Coord, target float64) {
	cs, err := cogs.New(
		[]int{52, 42, 30},
		[]int{36, 32, 28, 25, 22, 20, 18, 16, 15, 14, 12, 11},
	)
	if err != nil {
		b.Fatalf("cogs.New failed: %v", err)
	}
	tbl, err := ratiotable.New(cs)
	if err != nil {
		b.Fatalf("ratiotable.New failed: %v", err)
	}
	p, err := shiftseq.NewPlanner(tbl)
	if err != nil {
		b.Fatalf("NewPlanner failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plan(origin, target); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlan_AcrossGrid walks corner to corner.
func BenchmarkPlan_AcrossGrid(b *testing.B) {
	benchmarkPlan(b, ratiotable.Coord{F: 2, R: 0}, 52.0/11.0)
}

// BenchmarkPlan_NoShift measures the already-at-goal path.
func BenchmarkPlan_NoShift(b *testing.B) {
	benchmarkPlan(b, ratiotable.Coord{F: 0, R: 11}, 52.0/11.0)
}
