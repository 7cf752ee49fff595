package leveldata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decodeCSV reads comma separated tile values into a grid of capacity
// cells. It returns the cells and how many were written; writing more than
// capacity is an error, writing fewer is left to the caller.
func decodeCSV(text string, capacity int) ([]uint32, int, error) {
	cells := make([]uint32, capacity)
	n := 0
	var tok strings.Builder

	store := func() error {
		s := strings.TrimSpace(tok.String())
		tok.Reset()
		if s == "" {
			return fmt.Errorf("%w: empty value at cell %d", ErrMalformed, n)
		}
		if n >= capacity {
			return fmt.Errorf("%w: layer holds more than %d cells", ErrOverflow, capacity)
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: cell %d: %v", ErrMalformed, n, err)
		}
		if v > math.MaxUint32 {
			return fmt.Errorf("%w: cell %d: %d does not fit a tile id", ErrMalformed, n, v)
		}
		cells[n] = uint32(v)
		n++
		return nil
	}

	for _, r := range text {
		switch r {
		case ',':
			if err := store(); err != nil {
				return nil, n, err
			}
		case '\n', '\r':
		default:
			tok.WriteRune(r)
		}
	}
	if strings.TrimSpace(tok.String()) != "" {
		if err := store(); err != nil {
			return nil, n, err
		}
	}

	return cells, n, nil
}
