package gridmap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/gridmap"
)

// BenchmarkRegions measures region labelling on a random 1000×1000 grid
// with values in [0,3]. Complexity: O(W×H×d).
func BenchmarkRegions(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	rows := make([][]uint8, n)
	for y := range rows {
		rows[y] = make([]uint8, n)
		for x := range rows[y] {
			rows[y][x] = uint8(rng.Intn(4))
		}
	}
	m, err := gridmap.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	open := func(code uint8) bool { return code == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Regions(open, gridmap.Conn8)
	}
}
