package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mark is the symbol a player puts into a cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

var ErrUnknownMark = errors.New("unknown mark")

var (
	diagonalMain = [BoardSize]int{0, 4, 8}
	diagonalAnti = [BoardSize]int{2, 4, 6}
)

// ParseMark - converts a wire value into a Mark, the empty string is an empty cell.
func ParseMark(value string) (Mark, error) {
	switch mark := Mark(strings.ToUpper(value)); mark {
	case X, O, Empty:
		return mark, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, value)
	}
}

// Opponent - returns the other mark.
func (that Mark) Opponent() Mark {
	if that == X {
		return O
	}
	return X
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Board holds the 3x3 grid in row-major order and the winner recorded by the last completing move.
type Board struct {
	cells  [CellCount]Mark
	winner Mark
}

// NewBoard - returns an empty board without a winner.
func NewBoard() *Board {
	return &Board{}
}

// BoardFromCells - builds a board from a snapshot and derives the winner from its lines.
func BoardFromCells(cells [CellCount]Mark) (*Board, error) {
	board := NewBoard()

	for i, mark := range cells {
		if mark != Empty && !mark.IsPlayer() {
			return nil, fmt.Errorf("%w: cell %d", ErrUnknownMark, i)
		}
		board.cells[i] = mark
	}

	for i, mark := range board.cells {
		if mark != Empty && board.IsWinningMove(i, mark) {
			board.winner = mark
			break
		}
	}

	return board, nil
}

// MakeMove - places mark into cell if it is empty. Returns false and leaves the board untouched otherwise.
func (that *Board) MakeMove(cell int, mark Mark) bool {
	mustBeCell(cell)

	if that.cells[cell] != Empty {
		return false
	}

	that.cells[cell] = mark
	if that.IsWinningMove(cell, mark) {
		that.winner = mark
	}

	return true
}

// UndoMove - empties cell and clears the winner.
func (that *Board) UndoMove(cell int) {
	mustBeCell(cell)

	that.cells[cell] = Empty
	that.winner = Empty
}

// IsWinningMove - reports whether the lines through cell are fully occupied by mark.
// It must be called after mark has been placed.
func (that *Board) IsWinningMove(cell int, mark Mark) bool {
	mustBeCell(cell)

	row := cell / BoardSize
	if that.lineOf(mark, row*BoardSize, row*BoardSize+1, row*BoardSize+2) {
		return true
	}

	col := cell % BoardSize
	if that.lineOf(mark, col, col+BoardSize, col+2*BoardSize) {
		return true
	}

	// corners and the center are the only even cells, and the only ones on a diagonal
	if cell%2 == 0 {
		if that.lineOf(mark, diagonalMain[:]...) {
			return true
		}
		if that.lineOf(mark, diagonalAnti[:]...) {
			return true
		}
	}

	return false
}

func (that *Board) lineOf(mark Mark, cells ...int) bool {
	for _, cell := range cells {
		if that.cells[cell] != mark {
			return false
		}
	}
	return true
}

func (that *Board) HasEmptyCell() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}
	return false
}

func (that *Board) EmptyCellCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

// AvailableMoves - returns the empty cells in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, CellCount)
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// CurrentWinner - returns the mark that completed a line, if any.
func (that *Board) CurrentWinner() (Mark, bool) {
	return that.winner, that.winner != Empty
}

// IsTerminal - the game is over when somebody won or the grid is full.
func (that *Board) IsTerminal() bool {
	_, won := that.CurrentWinner()
	return won || !that.HasEmptyCell()
}

func (that *Board) Cell(cell int) Mark {
	mustBeCell(cell)
	return that.cells[cell]
}

func (that *Board) Cells() [CellCount]Mark {
	return that.cells
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that.cells {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if i%BoardSize == BoardSize-1 && i != CellCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type boardJSON struct {
	Cells  [CellCount]Mark `json:"cells"`
	Winner Mark            `json:"winner,omitempty"`
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Cells: that.cells, Winner: that.winner})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := BoardFromCells(raw.Cells)
	if err != nil {
		return err
	}

	*that = *board
	return nil
}

func mustBeCell(cell int) {
	if cell < 0 || cell >= CellCount {
		panic(fmt.Sprintf("cell index %d out of range [0,%d)", cell, CellCount))
	}
}
