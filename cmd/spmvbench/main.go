// Command spmvbench benchmarks sparse matrix-vector multiplication on a
// MatrixMarket file, comparing the coordinate representation against the
// compressed one.
//
// Usage:
//
//	spmvbench -file matrix.mtx[.gz] [-runs 100] [-order row|col] [-plot out.png]
//
// The tool loads the matrix, multiplies it by a deterministic pseudo-random
// vector in both representations, and prints mean and minimum wall time per
// multiply. With -plot it also renders a bar chart of the mean times.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/algebrago/sparsix/matrix"
	"github.com/algebrago/sparsix/mmio"
)

const vectorSeed = 8891

func main() {
	var (
		file     = flag.String("file", "", "MatrixMarket file to load (.mtx or .mtx.gz)")
		runs     = flag.Int("runs", 100, "multiplications per representation")
		orderStr = flag.String("order", "row", "storage order: row or col")
		plotPath = flag.String("plot", "", "optional PNG chart of mean times")
	)
	flag.Parse()

	if err := run(*file, *runs, *orderStr, *plotPath); err != nil {
		fmt.Fprintln(os.Stderr, "spmvbench:", err)
		os.Exit(1)
	}
}

func run(file string, runs int, orderStr, plotPath string) error {
	if file == "" {
		return fmt.Errorf("missing -file")
	}
	if runs < 1 {
		return fmt.Errorf("-runs must be positive, got %d", runs)
	}
	order, err := parseOrder(orderStr)
	if err != nil {
		return err
	}

	f, err := mmio.ReadFile(file)
	if err != nil {
		return err
	}
	m, err := f.Matrix(matrix.WithStorageOrder(order))
	if err != nil {
		return err
	}

	x := randomVector(m.Cols())
	fmt.Printf("matrix: %d x %d, nnz=%d, order=%s, runs=%d\n",
		m.Rows(), m.Cols(), m.NNZ(), order, runs)

	meanCoord, minCoord, err := timeMulVec(m, x, runs)
	if err != nil {
		return err
	}
	report("coordinate", meanCoord, minCoord)

	if err := m.Compress(); err != nil {
		return err
	}
	meanComp, minComp, err := timeMulVec(m, x, runs)
	if err != nil {
		return err
	}
	report("compressed", meanComp, minComp)

	if meanComp > 0 {
		fmt.Printf("speedup: %.2fx\n", float64(meanCoord)/float64(meanComp))
	}

	if plotPath != "" {
		if err := renderChart(plotPath, meanCoord, meanComp); err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", plotPath)
	}
	return nil
}

// timeMulVec runs MulVec repeatedly and returns mean and minimum duration.
func timeMulVec[T matrix.Scalar](m *matrix.Matrix[T], x []T, runs int) (mean, min time.Duration, err error) {
	var total time.Duration
	min = time.Duration(1<<63 - 1)
	for i := 0; i < runs; i++ {
		start := time.Now()
		if _, err = m.MulVec(x); err != nil {
			return 0, 0, err
		}
		d := time.Since(start)
		total += d
		if d < min {
			min = d
		}
	}
	return total / time.Duration(runs), min, nil
}

func report(label string, mean, min time.Duration) {
	fmt.Printf("%-11s mean=%12v  min=%12v\n", label, mean, min)
}

func parseOrder(s string) (matrix.StorageOrder, error) {
	switch s {
	case "row":
		return matrix.RowMajor, nil
	case "col":
		return matrix.ColMajor, nil
	default:
		return 0, fmt.Errorf("unknown -order %q, want row or col", s)
	}
}

// randomVector is seeded so repeated invocations time identical work.
func randomVector(n int) []float64 {
	rng := rand.New(rand.NewSource(vectorSeed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	return x
}

// renderChart draws the two mean times as a bar chart, in microseconds.
func renderChart(path string, coord, comp time.Duration) error {
	p := plot.New()
	p.Title.Text = "sparse matrix-vector multiply"
	p.Y.Label.Text = "mean time (µs)"

	values := plotter.Values{
		float64(coord) / float64(time.Microsecond),
		float64(comp) / float64(time.Microsecond),
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	p.Add(bars)
	p.NominalX("coordinate", "compressed")

	if err := p.Save(4*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}
