package renderer

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestMergeAverageFirstBatch(t *testing.T) {
	// With no prior samples the stored value must be ignored entirely
	garbage := core.NewVec3(math.NaN(), 1e30, -5)
	got, err := MergeAverage(garbage, 0, core.NewVec3(2, 4, 6), 2)
	if err != nil {
		t.Fatal(err)
	}
	want := core.NewVec3(1, 2, 3)
	if got != want {
		t.Errorf("MergeAverage first batch = %v, want %v", got, want)
	}
}

func TestMergeAverageWeightsByCounts(t *testing.T) {
	// 3 prior samples averaging 1.0, then a batch of 1 sample of 5.0:
	// new average is (3*1 + 5) / 4 = 2
	got, err := MergeAverage(core.NewVec3(1, 1, 1), 3, core.NewVec3(5, 5, 5), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := core.NewVec3(2, 2, 2)
	if got.Subtract(want).Length() > 1e-12 {
		t.Errorf("MergeAverage = %v, want %v", got, want)
	}
}

func TestMergeAverageRejectsZeroBatch(t *testing.T) {
	// An empty batch must fail fast instead of dividing into Inf/NaN
	for _, batch := range []int{0, -1} {
		if _, err := MergeAverage(core.NewVec3(1, 1, 1), 4, core.Vec3{}, batch); err == nil {
			t.Errorf("MergeAverage accepted batch size %d", batch)
		}
	}

	buf := NewAccumulationBuffer(2, 2)
	if err := buf.Accumulate(0, 0, core.Vec3{}, 0, 0); err == nil {
		t.Error("Accumulate accepted an empty batch")
	}
	if got := buf.At(0, 0); got != (core.Vec3{}) {
		t.Errorf("rejected batch still wrote %v to the buffer", got)
	}
}

func TestMergeAverageMatchesTrueMean(t *testing.T) {
	// Folding batches one at a time must agree with the plain mean of
	// all samples, regardless of how the batches are split
	samples := []float64{0.3, 1.7, 0.0, 4.2, 2.1, 0.9, 3.3, 1.1}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	trueMean := sum / float64(len(samples))

	splits := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{2, 2, 2, 2},
		{3, 5},
		{8},
		{1, 3, 4},
	}
	for _, split := range splits {
		var avg core.Vec3
		cumulative := 0
		i := 0
		for _, batch := range split {
			var batchSum core.Vec3
			for j := 0; j < batch; j++ {
				batchSum = batchSum.Add(core.NewVec3(samples[i], samples[i], samples[i]))
				i++
			}
			var err error
			avg, err = MergeAverage(avg, cumulative, batchSum, batch)
			if err != nil {
				t.Fatal(err)
			}
			cumulative += batch
		}
		if math.Abs(avg.X-trueMean) > 1e-12 {
			t.Errorf("split %v: running average %v, want %v", split, avg.X, trueMean)
		}
	}
}

func TestAccumulationBufferPerPixel(t *testing.T) {
	buf := NewAccumulationBuffer(3, 2)

	merges := []struct {
		x, y       int
		batchSum   core.Vec3
		cumulative int
	}{
		{1, 0, core.NewVec3(4, 4, 4), 0}, // average 2
		{2, 1, core.NewVec3(6, 6, 6), 0}, // average 3
		{1, 0, core.NewVec3(8, 8, 8), 2}, // (2*2+8)/4 = 3
	}
	for _, m := range merges {
		if err := buf.Accumulate(m.x, m.y, m.batchSum, m.cumulative, 2); err != nil {
			t.Fatal(err)
		}
	}

	if got := buf.At(1, 0); got.X != 3 {
		t.Errorf("At(1,0) = %v, want 3", got.X)
	}
	if got := buf.At(2, 1); got.X != 3 {
		t.Errorf("At(2,1) = %v, want 3", got.X)
	}
	if got := buf.At(0, 0); got != (core.Vec3{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
}

func TestDisplayBufferImage(t *testing.T) {
	buf := NewDisplayBuffer(2, 1)
	buf.Set(0, 0, core.NewVec3(1, 0, 0.5))
	buf.Set(1, 0, core.NewVec3(2, -1, 0)) // out of range, must clamp

	img := buf.Image()

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 127 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
	r, g, _, _ = img.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 {
		t.Errorf("out-of-range pixel not clamped: r=%d g=%d", r>>8, g>>8)
	}
}
