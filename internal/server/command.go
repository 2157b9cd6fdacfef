package server

import (
	"encoding/json"
	"fmt"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/pkg/api"
)

var angleByName = map[string]hex.Angle{
	"forward":   hex.Forward,
	"right":     hex.Right,
	"rightback": hex.RightBack,
	"back":      hex.Back,
	"leftback":  hex.LeftBack,
	"left":      hex.Left,
}

// ParseCommand превращает команду протокола в доменное действие.
// Здесь только синтаксис; семантические отказы (нечего поднимать,
// нет лестницы) решает движок и превращает их в no-op.
func ParseCommand(cmd api.ClientCommand) (domain.Action, error) {
	switch cmd.Action {
	case "WAIT":
		return domain.Wait(), nil

	case "TURN", "MOVE", "SPIN":
		var p api.AnglePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return domain.Action{}, fmt.Errorf("bad payload for %s: %w", cmd.Action, err)
		}
		if err := p.Validate(); err != nil {
			return domain.Action{}, err
		}
		angle := angleByName[p.Angle]
		switch cmd.Action {
		case "TURN":
			return domain.Turn(angle), nil
		case "MOVE":
			return domain.Move(angle), nil
		default:
			return domain.Spin(angle), nil
		}

	case "CHARGE":
		return domain.Charge(), nil

	case "PICK":
		return domain.Pick(), nil

	case "EQUIP":
		var p api.LetterPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return domain.Action{}, fmt.Errorf("bad payload for EQUIP: %w", err)
		}
		if err := p.Validate(); err != nil {
			return domain.Action{}, err
		}
		return domain.Equip(p.Letter[0]), nil

	case "DESCEND":
		return domain.Descend(), nil

	case "FIRE":
		var p api.TargetPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return domain.Action{}, fmt.Errorf("bad payload for FIRE: %w", err)
		}
		return domain.Fire(hex.Coord{Q: p.Q, R: p.R}), nil

	default:
		return domain.Action{}, fmt.Errorf("unknown action %q", cmd.Action)
	}
}
