package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
type Validator interface {
	Validate() error
}

var validAngles = map[string]bool{
	"forward":   true,
	"right":     true,
	"rightback": true,
	"back":      true,
	"leftback":  true,
	"left":      true,
}

func (p AnglePayload) Validate() error {
	if !validAngles[p.Angle] {
		return errors.New("unknown angle")
	}
	return nil
}

func (p LetterPayload) Validate() error {
	if len(p.Letter) != 1 {
		return errors.New("letter must be a single character")
	}
	ch := p.Letter[0]
	if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
		return errors.New("letter must be a latin letter")
	}
	return nil
}
