package domain

import "errors"

var (
	ErrInvalidCardString = errors.New("invalid card string")
	ErrCardCount         = errors.New("cards in play do not form the full pack")
	ErrHandSizes         = errors.New("hand sizes differ by more than one")
)

// Code is a machine-readable reason for rejecting a player action.
type Code string

const (
	CodeInvalidSuit        Code = "INVALID_SUITE"
	CodeMustTrickWithSuit  Code = "MUST_TRICK_WITH_SUITE"
	CodeMustTrickWithTrump Code = "MUST_TRICK_WITH_TRUMP"
	CodeNoClose            Code = "NO_CLOSE"
	CodeNoChange           Code = "NO_CHANGE"
)

// RuleError rejects an illegal player action. The action is not applied.
type RuleError struct {
	Code    Code
	Message MessageKind
}

func (e *RuleError) Error() string {
	return "illegal move: " + string(e.Code)
}

func reject(code Code) *RuleError {
	e := &RuleError{Code: code}
	switch code {
	case CodeInvalidSuit:
		e.Message = MsgInvalidSuit
	case CodeMustTrickWithSuit:
		e.Message = MsgMustTrickWithSuit
	case CodeMustTrickWithTrump:
		e.Message = MsgMustTrickWithTrump
	case CodeNoClose:
		e.Message = MsgNoClose
	case CodeNoChange:
		e.Message = MsgNoChange
	}
	return e
}
