package labelkit

import (
	"slices"
	"testing"
)

func TestListModelSetCurrentIndex(t *testing.T) {
	m := NewListModel()
	m.AddItem(nil, "a")
	m.AddItem(nil, "b")

	var changes []int
	m.OnCurrentIndexChanged(func(i int) { changes = append(changes, i) })

	m.SetCurrentIndex(1)
	m.SetCurrentIndex(1)
	m.SetCurrentIndex(5)
	m.SetCurrentIndex(-2)
	m.SetCurrentIndex(-1)

	if want := []int{1, -1}; !slices.Equal(changes, want) {
		t.Errorf("changes = %v, want %v", changes, want)
	}
}

func TestListModelClearResetsCurrent(t *testing.T) {
	m := NewListModel()
	m.AddItem(nil, "a")
	m.SetCurrentIndex(0)

	var changes []int
	m.OnCurrentIndexChanged(func(i int) { changes = append(changes, i) })

	m.Clear()

	if m.Count() != 0 || m.CurrentIndex() != -1 {
		t.Fatalf("after Clear count=%d current=%d", m.Count(), m.CurrentIndex())
	}
	if want := []int{-1}; !slices.Equal(changes, want) {
		t.Errorf("changes = %v, want %v", changes, want)
	}
}

func TestListModelInsertAndRemoveTrackCurrent(t *testing.T) {
	m := NewListModel()
	m.AddItem(nil, "a")
	m.AddItem(nil, "b")
	m.SetCurrentIndex(1)

	m.InsertItem(0, nil, "None")
	if got := texts(m); !slices.Equal(got, []string{"None", "a", "b"}) {
		t.Fatalf("rows = %v", got)
	}
	if m.CurrentIndex() != 2 {
		t.Errorf("current after insert = %d, want 2", m.CurrentIndex())
	}

	m.RemoveItem(0)
	if m.CurrentIndex() != 1 || m.ItemText(1) != "b" {
		t.Errorf("current after remove = %d (%q), want 1 (b)", m.CurrentIndex(), m.ItemText(1))
	}

	m.RemoveItem(1)
	if m.CurrentIndex() != 0 {
		t.Errorf("removing the current last row should select the new last row, got %d", m.CurrentIndex())
	}

	m.RemoveItem(0)
	if m.CurrentIndex() != -1 {
		t.Errorf("removing the only row should leave no current row, got %d", m.CurrentIndex())
	}

	m.RemoveItem(3)
}

func TestListModelOutOfRangeLookups(t *testing.T) {
	m := NewListModel()
	if m.ItemText(0) != "" || m.ItemIcon(-1) != nil {
		t.Error("out of range lookups must return zero values")
	}
}

func TestListModelUnsubscribe(t *testing.T) {
	m := NewListModel()
	m.AddItem(nil, "a")

	calls := 0
	unsubscribe := m.OnCurrentIndexChanged(func(int) { calls++ })
	unsubscribe()
	unsubscribe()

	m.SetCurrentIndex(0)
	if calls != 0 {
		t.Errorf("unsubscribed listener ran %d times", calls)
	}
}
