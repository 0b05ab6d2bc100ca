// Package engine implements the falling-block simulation: shapes, the seeded
// piece generator, the board with line clearing, scoring, level tables, replay
// recording/playback and the frame-stepped state machine that ties them together.
//
// The package has no terminal, storage or audio dependencies. Everything it
// produces is exposed through accessors, snapshots and subscribed events.
package engine

import "fmt"

// PieceType identifies one of the seven shapes.
type PieceType uint8

const (
	PieceS PieceType = iota
	PieceZ
	PieceL
	PieceJ
	PieceI
	PieceO
	PieceT
	pieceTypeCount
)

// PieceTypeCount is the number of distinct shapes.
const PieceTypeCount = int(pieceTypeCount)

var pieceNames = [pieceTypeCount]string{"S", "Z", "L", "J", "I", "O", "T"}

func (t PieceType) String() string {
	if t >= pieceTypeCount {
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
	return pieceNames[t]
}

// Valid reports whether t is one of the seven shapes.
func (t PieceType) Valid() bool {
	return t < pieceTypeCount
}

// Orientation is one of four rotation steps.
type Orientation uint8

const (
	OrientUp Orientation = iota
	OrientRight
	OrientDown
	OrientLeft
	orientationCount
)

// Next returns the orientation one clockwise step further.
func (o Orientation) Next() Orientation {
	return (o + 1) % orientationCount
}

// Prev returns the orientation one counter-clockwise step back.
func (o Orientation) Prev() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// shapeTable holds one 32-bit word per (type, orientation).
// High 16 bits: cells that must be free to rotate into the next orientation.
// Low 16 bits: occupied cells of this orientation in a 4x4 box.
// Bit for box cell (r, c) is 0x8000 >> (r*4 + c).
var shapeTable = [pieceTypeCount][orientationCount]uint32{
	PieceS: {0xEE206C00, 0x66E04620, 0x8EE006C0, 0xECC08C40},
	PieceZ: {0xE660C600, 0x2EE02640, 0xEE800C60, 0xCCE04C80},
	PieceL: {0xECC088C0, 0xEE20E800, 0x66E06220, 0x8EE002E0},
	PieceJ: {0x2EE02260, 0xCCE008E0, 0xEE80C880, 0xE660E200},
	PieceI: {0x7FCC4444, 0xEF330F00, 0x33FE2222, 0xCCF700F0},
	PieceO: {0xCC00CC00, 0xCC00CC00, 0xCC00CC00, 0xCC00CC00},
	PieceT: {0xE620E400, 0x26E02620, 0x8CE004E0, 0xEC808C80},
}

// typicalOrientation is the orientation every generated piece spawns in.
var typicalOrientation = [pieceTypeCount]Orientation{
	PieceS: OrientUp,
	PieceZ: OrientUp,
	PieceL: OrientRight,
	PieceJ: OrientRight,
	PieceI: OrientRight,
	PieceO: OrientUp,
	PieceT: OrientUp,
}

// TypicalOrientation returns the spawn orientation for t.
func TypicalOrientation(t PieceType) Orientation {
	return typicalOrientation[t]
}

// ShapeWord returns the combined rotation/occupancy word for t in orientation o.
func ShapeWord(t PieceType, o Orientation) uint32 {
	return shapeTable[t][o%orientationCount]
}

// Offset is a cell position relative to the top-left of a piece's 4x4 box.
type Offset struct {
	Row, Col int
}

// maskCells returns the offsets of the set bits of a 16-bit mask,
// scanned from the high bit (row 0, col 0) down.
func maskCells(mask uint16) []Offset {
	cells := make([]Offset, 0, 4)
	for i := range 16 {
		if mask&(0x8000>>i) != 0 {
			cells = append(cells, Offset{Row: i / 4, Col: i % 4})
		}
	}
	return cells
}

// ShapeCells returns the occupied offsets of t in orientation o.
// Index order matches the order a piece's cells are numbered in.
func ShapeCells(t PieceType, o Orientation) []Offset {
	return maskCells(uint16(ShapeWord(t, o)))
}

// turnCells returns the cells that must be free to turn t from one
// orientation to an adjacent one: the clockwise sweep between the two plus
// the target shape. Some sweep masks (Z from left) leave a target cell out,
// so the target shape is always added.
func turnCells(t PieceType, from, to Orientation) []Offset {
	sweep := from
	if to == from.Prev() {
		sweep = to
	}
	return maskCells(uint16(ShapeWord(t, sweep)>>16) | uint16(ShapeWord(t, to)))
}
