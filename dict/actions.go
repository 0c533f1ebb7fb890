package dict

// Action is one choice in the row prompt the front-end shows when the user
// activates a row.
type Action int

const (
	ActionEdit Action = iota
	ActionDelete
	ActionMoveUp
	ActionMoveDown
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	case ActionMoveUp:
		return "move up"
	case ActionMoveDown:
		return "move down"
	case ActionCancel:
		return "cancel"
	}
	return "unknown"
}

// AvailableActions computes the prompt choices for the row at the 1-based
// position under key. Edit, Delete and Cancel are always offered; the move
// actions only when the key has more than one entry and the neighbor exists.
// The order matches the buttons of the original row dialog.
func (s *Store) AvailableActions(key string, position int) []Action {
	actions := []Action{ActionEdit, ActionDelete}
	n := len(s.data.entries[key])
	if n > 1 {
		switch {
		case position == 1:
			actions = append(actions, ActionMoveDown)
		case position == n:
			actions = append(actions, ActionMoveUp)
		case position > 1 && position < n:
			actions = append(actions, ActionMoveUp, ActionMoveDown)
		}
	}
	return append(actions, ActionCancel)
}

// Notifier is implemented by the host input method. The front-end calls
// ReloadRoots after the editor closes so edited root keys take effect.
type Notifier interface {
	ReloadRoots() error
}
