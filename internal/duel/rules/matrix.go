package rules

// Labels used in the help grid, from the row move's perspective.
const (
	LabelWin  = "Win"
	LabelLose = "Lose"
	LabelDraw = "Draw"
)

// Matrix holds the outcome of every ordered pair of moves. Rows play as the
// first party and columns as the second.
type Matrix struct {
	moves    []string
	verdicts [][]Verdict
}

// BuildMatrix derives the outcome matrix for the provided move names.
//
// The result only depends on the number of moves and their order, so two
// calls with the same names produce identical matrices. BuildMatrix panics if
// the move count is not playable, as Resolve does.
func BuildMatrix(moves []string) Matrix {
	n := len(moves)
	names := make([]string, n)
	copy(names, moves)

	verdicts := make([][]Verdict, n)
	for i := range n {
		row := make([]Verdict, n)
		for j := range n {
			row[j] = Resolve(i, j, n)
		}
		verdicts[i] = row
	}
	return Matrix{moves: names, verdicts: verdicts}
}

// Size returns the number of moves in the matrix.
func (m Matrix) Size() int {
	return len(m.moves)
}

// Moves returns a copy of the header move names.
func (m Matrix) Moves() []string {
	out := make([]string, len(m.moves))
	copy(out, m.moves)
	return out
}

// Verdict returns the outcome for row move against column move.
func (m Matrix) Verdict(row, col int) Verdict {
	return m.verdicts[row][col]
}

// Grid renders the matrix with the default English labels.
func (m Matrix) Grid() [][]string {
	return m.GridWith(MatrixLabel)
}

// GridWith renders an (N+1)x(N+1) grid. Row and column zero hold the move
// names and cell (0,0) is empty.
func (m Matrix) GridWith(label func(Verdict) string) [][]string {
	n := len(m.moves)
	grid := make([][]string, 0, n+1)

	header := make([]string, 0, n+1)
	header = append(header, "")
	header = append(header, m.moves...)
	grid = append(grid, header)

	for i := range n {
		row := make([]string, 0, n+1)
		row = append(row, m.moves[i])
		for j := range n {
			row = append(row, label(m.verdicts[i][j]))
		}
		grid = append(grid, row)
	}
	return grid
}

// MatrixLabel maps a verdict to its help grid label.
func MatrixLabel(v Verdict) string {
	switch v {
	case FirstWins:
		return LabelWin
	case SecondWins:
		return LabelLose
	default:
		return LabelDraw
	}
}
