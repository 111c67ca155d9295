package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a renderable simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Move is one of the four unit steps on the grid.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists the unit steps in candidate enumeration order.
var Moves = [4]Move{Up, Down, Left, Right}

var moveLetters = [4]byte{'U', 'D', 'L', 'R'}

// Delta returns the coordinate offset of the move. Y grows downward.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Letter is the single-character encoding used in cycle files.
func (m Move) Letter() byte { return moveLetters[m&3] }

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// MoveFromLetter decodes U, D, L or R.
func MoveFromLetter(b byte) (Move, bool) {
	for i, l := range moveLetters {
		if l == b {
			return Move(i), true
		}
	}
	return 0, false
}
