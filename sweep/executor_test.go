package sweep

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilngas/numerical"
	"kilngas/registry"
	"kilngas/thermo"
)

func newRegistry(t *testing.T) *registry.Registry {
	r, err := registry.New(thermo.DefaultConstants())
	require.NoError(t, err)
	return r
}

func TestSplit(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 4, 7, 16} {
		e := New(workers)
		for _, total := range []int{1, 2, 5, 10, 17, 100, 1000} {
			tasks := e.split(total)
			next := 0
			for _, task := range tasks {
				require.Equal(t, next, task.start, "workers=%d total=%d", workers, total)
				require.Greater(t, task.end, task.start)
				next = task.end
			}
			assert.Equal(t, total, next, "workers=%d total=%d", workers, total)
		}
	}
}

// 并行扫描与逐点计算结果完全一致
func TestScanMatchesSequential(t *testing.T) {
	r := newRegistry(t)
	for _, workers := range []int{1, 3, 8} {
		e := New(workers)
		for _, s := range r.All() {
			points, err := e.ScanFull(s, 1000)
			require.NoError(t, err)
			require.Len(t, points, 1000)

			tmin, tmax := s.Thermo().Bounds()
			temps := numerical.Linspace(tmin, tmax, 1000)
			for i, p := range points {
				require.Equal(t, temps[i], p.Temperature)
				cp, err := s.SpecificHeatMole(temps[i])
				require.NoError(t, err)
				h, err := s.EnthalpyMole(temps[i])
				require.NoError(t, err)
				entropy, err := s.EntropyMole(temps[i])
				require.NoError(t, err)
				assert.Equal(t, cp, p.SpecificHeat)
				assert.Equal(t, h, p.Enthalpy)
				assert.Equal(t, entropy, p.Entropy)
			}
		}
	}
}

func TestScanOutOfRange(t *testing.T) {
	r := newRegistry(t)
	e := New(4)
	_, err := e.Scan(r.MustGet("H2"), 200, 4000, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, thermo.ErrOutOfRange))
	assert.Contains(t, err.Error(), "H2")
}

func TestScanInvalidArgs(t *testing.T) {
	r := newRegistry(t)
	e := New(2)
	_, err := e.Scan(r.MustGet("H2"), 300, 1000, 0)
	assert.Error(t, err)
	_, err = e.Scan(nil, 300, 1000, 10)
	assert.Error(t, err)

	points, err := e.Scan(r.MustGet("H2"), 300, 1000, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 300.0, points[0].Temperature)
}

func TestDefaultWorkers(t *testing.T) {
	assert.Greater(t, New(0).Workers(), 0)
	assert.Equal(t, 5, New(5).Workers())
}

func BenchmarkScan(b *testing.B) {
	r, err := registry.New(thermo.DefaultConstants())
	if err != nil {
		b.Fatal(err)
	}
	s := r.MustGet("CH4")
	for _, workers := range []int{1, 4} {
		e := New(workers)
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.ScanFull(s, 10000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
