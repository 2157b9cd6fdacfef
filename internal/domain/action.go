package domain

import (
	"fmt"

	"hexcrawl-server/internal/hex"
)

// ActionKind - внутренний числовой идентификатор действия.
type ActionKind uint8

const (
	ActionWait ActionKind = iota
	ActionTurn
	ActionMove
	ActionCharge
	ActionSpin
	ActionPick
	ActionEquip
	ActionDescend
	ActionFire
)

var actionNames = map[ActionKind]string{
	ActionWait:    "WAIT",
	ActionTurn:    "TURN",
	ActionMove:    "MOVE",
	ActionCharge:  "CHARGE",
	ActionSpin:    "SPIN",
	ActionPick:    "PICK",
	ActionEquip:   "EQUIP",
	ActionDescend: "DESCEND",
	ActionFire:    "FIRE",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Action - одно действие актора за тик. Angle имеет смысл для
// Turn/Move/Spin, Letter - для Equip, Target - для Fire.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Angle  hex.Angle  `json:"angle,omitempty"`
	Letter byte       `json:"letter,omitempty"`
	Target hex.Coord  `json:"target,omitempty"`
}

func Wait() Action { return Action{Kind: ActionWait} }
func Turn(a hex.Angle) Action { return Action{Kind: ActionTurn, Angle: a} }
func Move(a hex.Angle) Action { return Action{Kind: ActionMove, Angle: a} }
func Charge() Action { return Action{Kind: ActionCharge} }
func Spin(a hex.Angle) Action { return Action{Kind: ActionSpin, Angle: a} }
func Pick() Action { return Action{Kind: ActionPick} }
func Equip(letter byte) Action { return Action{Kind: ActionEquip, Letter: letter} }
func Descend() Action { return Action{Kind: ActionDescend} }
func Fire(t hex.Coord) Action { return Action{Kind: ActionFire, Target: t} }

// CouldBeAttack сообщает, может ли действие вылиться в атаку ближнего боя
// (шаг во врага).
func (a Action) CouldBeAttack() bool {
	switch a.Kind {
	case ActionMove, ActionCharge, ActionSpin:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionTurn, ActionMove, ActionSpin:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Angle)
	case ActionEquip:
		return fmt.Sprintf("%s(%c)", a.Kind, a.Letter)
	default:
		return a.Kind.String()
	}
}
