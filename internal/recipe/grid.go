package recipe

import (
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// CompactPattern reduces a 3×3 crafting grid to the smallest pattern the game
// accepts.
//
// A single used cell becomes a one-character pattern. Otherwise the pattern
// spans the bounding box of the used rows and columns: unused rows and
// columns on the outside are trimmed, unused ones between used ones stay as
// blank cells so the shape is preserved. Symbols are upper-cased and blanks
// are rendered as a space. An empty grid yields an empty pattern.
func CompactPattern(g options.Grid) []string {
	var usedRow, usedCol [3]bool
	count := 0
	last := ""
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if options.Blank(g[r][c]) {
				continue
			}
			usedRow[r], usedCol[c] = true, true
			count++
			last = g[r][c]
		}
	}

	switch count {
	case 0:
		return []string{}
	case 1:
		return []string{cell(last)}
	}

	r0, r1 := bounds(usedRow)
	c0, c1 := bounds(usedCol)

	pattern := make([]string, 0, r1-r0+1)
	for r := r0; r <= r1; r++ {
		var sb strings.Builder
		for c := c0; c <= c1; c++ {
			sb.WriteString(cell(g[r][c]))
		}
		pattern = append(pattern, sb.String())
	}
	return pattern
}

// bounds returns the first and last used index.
func bounds(used [3]bool) (first, last int) {
	first, last = -1, -1
	for i, u := range used {
		if !u {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

func cell(v string) string {
	if options.Blank(v) {
		return " "
	}
	return strings.ToUpper(strings.TrimSpace(v))
}
