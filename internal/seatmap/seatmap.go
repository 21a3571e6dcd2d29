// Package seatmap renders the ASCII availability grid for a studio. The
// coordinate scheme (row letters A.., 1-based column numbers) is the same
// one the seat ledger stores; the renderer is presentation only.
package seatmap

import (
	"strconv"
	"strings"
)

// Seat identifies one grid position.
type Seat struct {
	Row string
	Col int
}

const (
	symbolSold = "X"
	symbolHeld = "~"
	symbolFree = "O"
)

// RowLetters returns the row labels for a studio with n rows: A, B, C...
func RowLetters(n int) []string {
	letters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		letters = append(letters, string(rune('A'+i)))
	}
	return letters
}

// aisleAfter returns the column after which the visual aisle is placed.
func aisleAfter(cols int) int {
	if cols <= 6 {
		return cols / 2
	}
	return 6
}

// Build produces the display lines: a screen header, a column number line,
// then one line per row. Sold seats render as X, seats held in some cart as
// ~, free seats as O. Columns are split into two blocks around the aisle.
func Build(rows, cols int, sold, held map[Seat]struct{}) []string {
	if rows <= 0 || cols <= 0 {
		return []string{"NO SEATS"}
	}

	aisle := aisleAfter(cols)

	lines := make([]string, 0, rows+2)
	lines = append(lines, "          SCREEN")

	var leftNums, rightNums []string
	for c := 1; c <= cols; c++ {
		if c <= aisle {
			leftNums = append(leftNums, strconv.Itoa(c))
		} else {
			rightNums = append(rightNums, strconv.Itoa(c))
		}
	}
	lines = append(lines, "   "+strings.Join(leftNums, " ")+"   "+strings.Join(rightNums, " "))

	for _, r := range RowLetters(rows) {
		var left, right []string
		for c := 1; c <= cols; c++ {
			sym := symbolFree
			if _, ok := sold[Seat{Row: r, Col: c}]; ok {
				sym = symbolSold
			} else if _, ok := held[Seat{Row: r, Col: c}]; ok {
				sym = symbolHeld
			}

			if c <= aisle {
				left = append(left, sym)
			} else {
				right = append(right, sym)
			}
		}
		lines = append(lines, r+"  "+strings.Join(left, " ")+"   "+strings.Join(right, " "))
	}

	return lines
}
