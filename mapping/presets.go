package mapping

import (
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

// The seven built-in presets. All of them keep Select, Start and the
// directions in place; they differ in how the four face buttons and the
// shoulders land on the PlayStation layout.
var (
	// Table1 is the default: B and A on the bottom-row actions,
	// shoulders straight across.
	Table1 = Table{Name: "default", Entries: []Entry{
		{snes.ButtonB, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonY, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonX, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonR, psx.ButtonR1, psx.AnalogR1},
		{snes.ButtonL, psx.ButtonL1, psx.AnalogL1},
	}}

	// Table2 puts B on Circle and moves A down to R2.
	Table2 = Table{Name: "circle-confirm", Entries: []Entry{
		{snes.ButtonB, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonY, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonR2, psx.AnalogR2},
		{snes.ButtonX, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonR, psx.ButtonR1, psx.AnalogR1},
		{snes.ButtonL, psx.ButtonSquare, psx.AnalogSquare},
	}}

	// Table3 rotates the face buttons a quarter turn clockwise.
	Table3 = Table{Name: "rotated-cw", Entries: []Entry{
		{snes.ButtonB, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonY, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonX, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonR, psx.ButtonR1, psx.AnalogR1},
		{snes.ButtonL, psx.ButtonL1, psx.AnalogL1},
	}}

	// Table4 swaps the action columns: B on Square, A on Triangle.
	Table4 = Table{Name: "columns-swapped", Entries: []Entry{
		{snes.ButtonB, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonY, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonX, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonR, psx.ButtonR1, psx.AnalogR1},
		{snes.ButtonL, psx.ButtonL1, psx.AnalogL1},
	}}

	// Table5 mirrors the face buttons and swaps the shoulders.
	Table5 = Table{Name: "mirrored", Entries: []Entry{
		{snes.ButtonB, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonY, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonX, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonR, psx.ButtonL1, psx.AnalogL1},
		{snes.ButtonL, psx.ButtonR1, psx.AnalogR1},
	}}

	// Table6 is the default with the shoulders dropped to L2/R2 for
	// titles that put throttle and brake there.
	Table6 = Table{Name: "lower-shoulders", Entries: []Entry{
		{snes.ButtonB, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonY, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonDown, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonLeft, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonRight, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonA, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonX, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonR, psx.ButtonR2, psx.AnalogR2},
		{snes.ButtonL, psx.ButtonL2, psx.AnalogL2},
	}}

	// Table7 is the default with directions and shoulders reversed,
	// for an arcade stick mounted rotated in the right hand.
	Table7 = Table{Name: "stick-rotated", Entries: []Entry{
		{snes.ButtonB, psx.ButtonCross, psx.AnalogCross},
		{snes.ButtonY, psx.ButtonSquare, psx.AnalogSquare},
		{snes.ButtonSelect, psx.ButtonSelect, psx.AnalogNone},
		{snes.ButtonStart, psx.ButtonStart, psx.AnalogNone},
		{snes.ButtonUp, psx.ButtonDown, psx.AnalogDown},
		{snes.ButtonDown, psx.ButtonUp, psx.AnalogUp},
		{snes.ButtonLeft, psx.ButtonRight, psx.AnalogRight},
		{snes.ButtonRight, psx.ButtonLeft, psx.AnalogLeft},
		{snes.ButtonA, psx.ButtonCircle, psx.AnalogCircle},
		{snes.ButtonX, psx.ButtonTriangle, psx.AnalogTriangle},
		{snes.ButtonR, psx.ButtonL1, psx.AnalogL1},
		{snes.ButtonL, psx.ButtonR1, psx.AnalogR1},
	}}
)

// Presets returns the tables in selection order, Table1 first.
func Presets() []Table {
	return []Table{Table1, Table2, Table3, Table4, Table5, Table6, Table7}
}
