package labelkit

import (
	"image"
	"slices"
)

// Item is one row of a label list.
type Item struct {
	Icon image.Image // nil for rows without a swatch
	Text string
}

// ItemList is the list a LabelComboBox renders into. Indices are display
// indices; -1 means no current row.
type ItemList interface {
	Clear()
	InsertItem(index int, icon image.Image, text string)
	RemoveItem(index int)
	AddItem(icon image.Image, text string)
	Count() int
	ItemText(index int) string
	ItemIcon(index int) image.Image
	CurrentIndex() int
	SetCurrentIndex(index int)
	// OnCurrentIndexChanged registers fn to run whenever the current row
	// changes and returns a function that cancels the registration.
	OnCurrentIndexChanged(fn func(index int)) (unsubscribe func())
}

// ListModel is an in-memory ItemList. Front-ends draw from it.
type ListModel struct {
	items   []Item
	current int
	changed observers[int]
}

// NewListModel creates an empty list with no current row.
func NewListModel() *ListModel {
	return &ListModel{current: -1}
}

// Clear removes every row and resets the current row to -1.
func (m *ListModel) Clear() {
	m.items = nil
	m.setCurrent(-1)
}

// InsertItem inserts a row before index. Out of range indices append.
func (m *ListModel) InsertItem(index int, icon image.Image, text string) {
	if index < 0 || index > len(m.items) {
		index = len(m.items)
	}
	m.items = slices.Insert(m.items, index, Item{Icon: icon, Text: text})

	if m.current >= index {
		m.setCurrent(m.current + 1)
	}
}

// RemoveItem removes the row at index. Removing the current row moves the
// selection to the row that takes its place, if any.
func (m *ListModel) RemoveItem(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.items = slices.Delete(m.items, index, index+1)

	switch {
	case m.current > index:
		m.setCurrent(m.current - 1)
	case m.current == index:
		m.setCurrent(min(index, len(m.items)-1))
	}
}

func (m *ListModel) AddItem(icon image.Image, text string) {
	m.items = append(m.items, Item{Icon: icon, Text: text})
}

func (m *ListModel) Count() int {
	return len(m.items)
}

// ItemText returns the label of row index, or "" when out of range.
func (m *ListModel) ItemText(index int) string {
	if index < 0 || index >= len(m.items) {
		return ""
	}
	return m.items[index].Text
}

// ItemIcon returns the icon of row index, or nil when out of range.
func (m *ListModel) ItemIcon(index int) image.Image {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index].Icon
}

// Items returns a copy of the rows.
func (m *ListModel) Items() []Item {
	return slices.Clone(m.items)
}

func (m *ListModel) CurrentIndex() int {
	return m.current
}

// SetCurrentIndex selects a row. Indices outside [-1, Count()-1] are ignored.
// Listeners only run when the current row actually changes.
func (m *ListModel) SetCurrentIndex(index int) {
	if index < -1 || index >= len(m.items) {
		return
	}
	m.setCurrent(index)
}

func (m *ListModel) OnCurrentIndexChanged(fn func(index int)) (unsubscribe func()) {
	return m.changed.add(fn)
}

func (m *ListModel) setCurrent(index int) {
	if index == m.current {
		return
	}
	m.current = index
	m.changed.notify(index)
}
