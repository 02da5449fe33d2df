package game

import (
	"soulcaster/internal/turn"

	"github.com/gdamore/tcell/v2"
)

// Command is a player-requested key command.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveN
	CmdMoveS
	CmdMoveE
	CmdMoveW
	CmdMoveNE
	CmdMoveNW
	CmdMoveSE
	CmdMoveSW
	CmdWait
	CmdCast1
	CmdCast2
	CmdCast3
	CmdCast4
	CmdQuit
)

// keyToCommand maps a tcell key event to a command.
func keyToCommand(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveN
	case tcell.KeyDown:
		return CmdMoveS
	case tcell.KeyRight:
		return CmdMoveE
	case tcell.KeyLeft:
		return CmdMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return CmdMoveN
	case 'j', 'J':
		return CmdMoveS
	case 'l', 'L':
		return CmdMoveE
	case 'h', 'H':
		return CmdMoveW
	case 'y', 'Y':
		return CmdMoveNW
	case 'u', 'U':
		return CmdMoveNE
	case 'b', 'B':
		return CmdMoveSW
	case 'n', 'N':
		return CmdMoveSE
	case '.', ' ':
		return CmdWait
	case '1':
		return CmdCast1
	case '2':
		return CmdCast2
	case '3':
		return CmdCast3
	case '4':
		return CmdCast4
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}

var moveDeltas = map[Command][2]int{
	CmdMoveN:  {0, -1},
	CmdMoveS:  {0, 1},
	CmdMoveE:  {1, 0},
	CmdMoveW:  {-1, 0},
	CmdMoveNE: {1, -1},
	CmdMoveNW: {-1, -1},
	CmdMoveSE: {1, 1},
	CmdMoveSW: {-1, 1},
}

// commandToAction converts a command into the player's turn action. ok is
// false for commands that do not take a turn.
func commandToAction(c Command) (a turn.Action, ok bool) {
	if d, isMove := moveDeltas[c]; isMove {
		return turn.Walk(d[0], d[1]), true
	}
	switch c {
	case CmdWait:
		return turn.Nothing(), true
	case CmdCast1, CmdCast2, CmdCast3, CmdCast4:
		return turn.SoulCast(int(c - CmdCast1)), true
	}
	return turn.Action{}, false
}
