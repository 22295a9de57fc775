package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// CellFunc returns the screen rectangle of the grid cell at (row, col).
type CellFunc func(row, col int) core.Rect

// BuildBlocks converts level rows into blocks, scanning rows top to bottom
// and columns left to right. Characters missing from the symbol table are
// empty space. The result depends only on its inputs.
func BuildBlocks(rows []string, cell CellFunc, symbols config.SymbolTable) []Block {
	var blocks []Block
	for row, line := range rows {
		col := 0
		for _, ch := range line {
			if sym, ok := symbols[ch]; ok {
				blocks = append(blocks, Block{
					Rect:   cell(row, col),
					Color:  sym.Color,
					Symbol: ch,
					Points: sym.Points,
				})
			}
			col++
		}
	}
	return blocks
}

// TotalPoints returns the score for destroying every block.
func TotalPoints(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		total += b.Points
	}
	return total
}
