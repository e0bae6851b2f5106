package ui

import "github.com/BrandonKowalski/labelkit/pkg/labelkit"

// PickerAction describes how a LabelPicker session ended.
type PickerAction int

const (
	PickerActionSelected     PickerAction = iota // User confirmed a color row
	PickerActionNoneSelected                     // User confirmed the None row
)

func (a PickerAction) String() string {
	switch a {
	case PickerActionSelected:
		return "selected"
	case PickerActionNoneSelected:
		return "none"
	default:
		return "unknown"
	}
}

// PickerResult is the combo box state after a confirmed selection.
type PickerResult struct {
	Action PickerAction
	Index  int // logical index, -1 for the None row
	Color  labelkit.Color
	Name   string
}
