package model

import "fmt"

// MenuChoice is an entry of the main menu
type MenuChoice uint8

const (
	MenuNewGame  MenuChoice = 1
	MenuContinue MenuChoice = 2
	MenuExit     MenuChoice = 3
)

// ParseMenuChoice maps a menu number to its choice
func ParseMenuChoice(n uint8) (MenuChoice, error) {
	switch MenuChoice(n) {
	case MenuNewGame, MenuContinue, MenuExit:
		return MenuChoice(n), nil
	default:
		return 0, fmt.Errorf("%w: no option for number %d", ErrInvalidChoice, n)
	}
}

// Action is a player decision during their turn
type Action uint8

const (
	ActionHit        Action = 1
	ActionStand      Action = 2
	ActionDoubleDown Action = 3
)

// ParseAction maps an action menu number to its action
func ParseAction(n uint8) (Action, error) {
	switch Action(n) {
	case ActionHit, ActionStand, ActionDoubleDown:
		return Action(n), nil
	default:
		return 0, fmt.Errorf("%w: no option for number %d", ErrInvalidChoice, n)
	}
}

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDoubleDown:
		return "double_down"
	default:
		return "unknown"
	}
}
