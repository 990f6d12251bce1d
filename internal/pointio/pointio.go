// Package pointio reads and writes point sets as CSV.
package pointio

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"honnef.co/go/pointset"
)

// ReadCSV reads points from CSV data. If the first record contains a field
// that isn't a number, it is treated as a header and the columns named x and
// y (case-insensitive) are used. Otherwise the first two columns are x and y.
func ReadCSV(r io.Reader) ([]pointset.Point, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}

	idxX, idxY := 0, 1
	first := 0
	if isHeader(recs[0]) {
		idxX, idxY = -1, -1
		for i, h := range recs[0] {
			switch strings.ToLower(strings.TrimSpace(h)) {
			case "x":
				if idxX == -1 {
					idxX = i
				}
			case "y":
				if idxY == -1 {
					idxY = i
				}
			}
		}
		if idxX == -1 || idxY == -1 {
			return nil, errors.New("csv: x/y columns not found")
		}
		first = 1
	}

	points := make([]pointset.Point, 0, len(recs)-first)
	for i, row := range recs[first:] {
		n := i + first + 1
		if idxX >= len(row) || idxY >= len(row) {
			return nil, fmt.Errorf("csv: record %d: expected at least %d fields, got %d", n, max(idxX, idxY)+1, len(row))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv: record %d: %w", n, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv: record %d: %w", n, err)
		}
		points = append(points, pointset.Pt(x, y))
	}
	return points, nil
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return true
		}
	}
	return false
}

// WriteCSV writes points as x,y records with a header.
func WriteCSV(w io.Writer, points []pointset.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range points {
		rec := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SortByX returns a copy of points sorted ascending by x. Points with equal x
// keep their relative order.
func SortByX(points []pointset.Point) []pointset.Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b pointset.Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return out
}
