// Package save reads and writes grid snapshots as a single line of
// space-separated integers: rows, cols, then the flat index of every live cell.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"lifegrid/internal/life"
)

// DefaultPath is the save file used when none is configured.
const DefaultPath = "GameOfLifeSave.txt"

var (
	// ErrIncompatible reports a record whose dimensions differ from the grid.
	ErrIncompatible = errors.New("no compatible save")
	// ErrMalformed reports a record that cannot be parsed.
	ErrMalformed = errors.New("malformed save record")
)

// Record is a decoded snapshot.
type Record struct {
	Rows, Cols int
	Live       []int
}

// Snapshot captures the current state of g.
func Snapshot(g *life.Life) Record {
	rows, cols := g.Dimensions()
	return Record{Rows: rows, Cols: cols, Live: g.LiveIndices()}
}

// Encode writes r in the snapshot format.
func Encode(w io.Writer, r Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(r.Rows))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(r.Cols))
	for _, t := range r.Live {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(t))
	}
	return bw.Flush()
}

// Decode parses a snapshot. Every index is checked against the declared
// dimensions.
func Decode(rd io.Reader) (Record, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return Record{}, fmt.Errorf("read save record: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("%d fields, want at least 2: %w", len(fields), ErrMalformed)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Record{}, fmt.Errorf("field %d %q: %w", i, f, ErrMalformed)
		}
		nums[i] = n
	}
	r := Record{Rows: nums[0], Cols: nums[1], Live: nums[2:]}
	if r.Rows <= 0 || r.Cols <= 0 {
		return Record{}, fmt.Errorf("dimensions %dx%d: %w", r.Rows, r.Cols, ErrMalformed)
	}
	size := r.Rows * r.Cols
	for _, t := range r.Live {
		if t < 0 || t >= size {
			return Record{}, fmt.Errorf("cell %d outside [0,%d): %w", t, size, ErrMalformed)
		}
	}
	return r, nil
}

// Compatible reports whether r can be loaded into g.
func (r Record) Compatible(g *life.Life) bool {
	rows, cols := g.Dimensions()
	return r.Rows == rows && r.Cols == cols
}

// Apply replaces the state of g with r. Nothing is changed when the
// dimensions differ.
func Apply(g *life.Life, r Record) error {
	if !r.Compatible(g) {
		rows, cols := g.Dimensions()
		return fmt.Errorf("record %dx%d, grid %dx%d: %w", r.Rows, r.Cols, rows, cols, ErrIncompatible)
	}
	return g.Replace(r.Live)
}

// Store saves and loads snapshots of one grid to a file.
type Store struct {
	Path string
}

// NewStore returns a Store backed by path, or DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Save overwrites the store file with the current state of g.
func (s *Store) Save(g *life.Life) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create save file %q: %w", s.Path, err)
	}
	r := Snapshot(g)
	if err := Encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write save file %q: %w", s.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save file %q: %w", s.Path, err)
	}
	logrus.Debugf("save: wrote %d live cells to %s", len(r.Live), s.Path)
	return nil
}

// Read returns the stored record if it exists and matches g's dimensions.
func (s *Store) Read(g *life.Life) (Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("%s: %w", s.Path, ErrIncompatible)
		}
		return Record{}, fmt.Errorf("open save file %q: %w", s.Path, err)
	}
	defer f.Close()
	r, err := Decode(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", s.Path, err)
	}
	if !r.Compatible(g) {
		rows, cols := g.Dimensions()
		logrus.Warnf("save: %s holds a %dx%d grid, current grid is %dx%d", s.Path, r.Rows, r.Cols, rows, cols)
		return Record{}, fmt.Errorf("%s: %w", s.Path, ErrIncompatible)
	}
	return r, nil
}

// Available reports whether a compatible save exists for g.
func (s *Store) Available(g *life.Life) bool {
	_, err := s.Read(g)
	return err == nil
}

// Load replaces the state of g with the stored snapshot.
func (s *Store) Load(g *life.Life) error {
	r, err := s.Read(g)
	if err != nil {
		return err
	}
	return Apply(g, r)
}
