package mmio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/algebrago/sparsix/matrix"
)

// banner is emitted at the top of every written file. Readers treat it as
// a comment line, per the MatrixMarket convention.
const banner = "%%MatrixMarket matrix coordinate real general"

// File is the decoded content of a MatrixMarket coordinate file: declared
// dimensions plus a zero-based coordinate mapping. Duplicate (row, col)
// pairs in the input resolve last-value-wins, so len(Entries) may be
// smaller than the nnz the header declared.
type File struct {
	Rows    int
	Cols    int
	Entries matrix.Entries[float64]
}

// Matrix builds an uncompressed matrix from the decoded content. Options
// pass straight through to matrix.New, so the caller picks storage order
// and validation policy.
func (f *File) Matrix(opts ...matrix.Option) (*matrix.Matrix[float64], error) {
	return matrix.New[float64](f.Rows, f.Cols, f.Entries, opts...)
}

// Read decodes a MatrixMarket coordinate stream.
//
// Behavior highlights:
//   - comment lines ('%' prefix, banner included) and blank lines are
//     skipped wherever they appear;
//   - the first non-comment line must be "rows cols nnz", otherwise
//     ErrBadHeader;
//   - each entry line must be "row col value" with one-based indices inside
//     the declared dimensions, otherwise ErrBadEntry;
//   - duplicates resolve last-value-wins;
//   - a stream that ends before nnz entries were seen yields ErrBadEntry.
//
// Complexity: O(nnz) time, O(nnz) memory.
func Read(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line, ok := nextDataLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: missing size line", ErrBadHeader)
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: size line %q", ErrBadHeader, line)
	}
	rows, err1 := strconv.Atoi(fields[0])
	cols, err2 := strconv.Atoi(fields[1])
	nnz, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: size line %q", ErrBadHeader, line)
	}
	if rows <= 0 || cols <= 0 || nnz < 0 {
		return nil, fmt.Errorf("%w: %d x %d, nnz=%d", ErrBadHeader, rows, cols, nnz)
	}

	f := &File{
		Rows:    rows,
		Cols:    cols,
		Entries: make(matrix.Entries[float64], nnz),
	}
	for i := 0; i < nnz; i++ {
		line, ok = nextDataLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: stream ended after %d of %d entries", ErrBadEntry, i, nnz)
		}
		row, col, val, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		if row < 1 || row > rows || col < 1 || col > cols {
			return nil, fmt.Errorf("%w: index (%d, %d) outside %d x %d", ErrBadEntry, row, col, rows, cols)
		}
		f.Entries[matrix.Coord{Row: row - 1, Col: col - 1}] = val
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mmio: read: %w", err)
	}
	return f, nil
}

// ReadFile opens path and decodes it via Read. A ".gz" suffix selects
// transparent gzip decompression.
func ReadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmio: open: %w", err)
	}
	defer fd.Close()

	var r io.Reader = fd
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fd)
		if err != nil {
			return nil, fmt.Errorf("mmio: gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return Read(r)
}

// Write encodes f as MatrixMarket coordinate text: banner, size line, then
// one entry per line in row-major coordinate order so output is
// deterministic regardless of map iteration.
func Write(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", banner, f.Rows, f.Cols, len(f.Entries)); err != nil {
		return fmt.Errorf("mmio: write: %w", err)
	}

	coords := make([]matrix.Coord, 0, len(f.Entries))
	for c := range f.Entries {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})

	for _, c := range coords {
		if _, err := fmt.Fprintf(bw, "%d %d %.17g\n", c.Row+1, c.Col+1, f.Entries[c]); err != nil {
			return fmt.Errorf("mmio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mmio: write: %w", err)
	}
	return nil
}

// WriteFile creates path and encodes f via Write. A ".gz" suffix selects
// transparent gzip compression.
func WriteFile(path string, f *File) error {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mmio: create: %w", err)
	}
	defer fd.Close()

	var w io.Writer = fd
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(fd)
		w = gz
	}
	if err := Write(w, f); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("mmio: gzip: %w", err)
		}
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("mmio: close: %w", err)
	}
	return nil
}

// nextDataLine advances the scanner past blank and comment lines and
// returns the next payload line, trimmed.
func nextDataLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}

func parseEntry(line string) (row, col int, val float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: line %q", ErrBadEntry, line)
	}
	row, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	val, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("%w: line %q", ErrBadEntry, line)
	}
	return row, col, val, nil
}
