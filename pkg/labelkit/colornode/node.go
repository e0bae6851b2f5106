// Package colornode provides an observable color table that can back a
// labelkit.LabelComboBox, with loaders for Slicer color table files and TOML
// tables.
package colornode

import (
	"fmt"
	"slices"
	"sync"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"go.uber.org/atomic"
)

// Node types reported through TypeString.
const (
	TypeUser   = "User"
	TypeFile   = "File"
	TypeRemote = "Remote"
)

// MaxColorIndex is the largest index a table may hold. Stock Slicer tables
// stay far below it.
const MaxColorIndex = 1<<16 - 1

var (
	_ labelkit.ColorSource     = (*Node)(nil)
	_ labelkit.SourceDescriber = (*Node)(nil)
)

type entry struct {
	name string
	rgba [4]float64
}

type observer struct {
	id uint64
	fn func()
}

// Node is an indexed table of named colors. It is safe for concurrent use;
// observers run synchronously on the goroutine that made the change, after
// the node's lock is released.
type Node struct {
	id  string
	typ string

	mu               sync.Mutex
	entries          []entry
	namesInitialised bool
	observers        []observer
	batchDepth       int
	dirty            bool

	nextObserverID atomic.Uint64
}

// New creates an empty node. Its names count as not initialised until
// SetNamesInitialised(true) is called.
func New(id, typ string) *Node {
	if typ == "" {
		typ = TypeUser
	}
	return &Node{id: id, typ: typ}
}

func (n *Node) ClassName() string { return "ColorTableNode" }

func (n *Node) ID() string { return n.id }

func (n *Node) TypeString() string { return n.typ }

// LookupTable returns a live view of the node's colors.
func (n *Node) LookupTable() labelkit.LookupTable {
	return tableView{n}
}

// NumberOfColors returns the table size, including unnamed gap entries.
func (n *Node) NumberOfColors() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// TableValue returns the RGBA at index, or transparent black when out of
// range.
func (n *Node) TableValue(index int) [4]float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if index < 0 || index >= len(n.entries) {
		return [4]float64{}
	}
	return n.entries[index].rgba
}

// ColorName returns the name at index, or "" when out of range.
func (n *Node) ColorName(index int) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if index < 0 || index >= len(n.entries) {
		return ""
	}
	return n.entries[index].name
}

func (n *Node) NamesInitialised() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.namesInitialised
}

func (n *Node) SetNamesInitialised(initialised bool) {
	n.mutate(func() bool {
		if n.namesInitialised == initialised {
			return false
		}
		n.namesInitialised = initialised
		return true
	})
}

// SetNumberOfColors grows the table with unnamed transparent black entries
// or truncates it.
func (n *Node) SetNumberOfColors(count int) {
	count = min(max(count, 0), MaxColorIndex+1)
	n.mutate(func() bool {
		if count == len(n.entries) {
			return false
		}
		n.resize(count)
		return true
	})
}

// SetColor stores a named color at index, growing the table if needed.
// Index must lie in [0,MaxColorIndex] and channels in [0,1].
func (n *Node) SetColor(index int, name string, r, g, b, a float64) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	rgba := [4]float64{r, g, b, a}
	for _, v := range rgba {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: channel %g out of [0,1] at index %d", ErrInvalidColor, v, index)
		}
	}

	n.mutate(func() bool {
		if index >= len(n.entries) {
			n.resize(index + 1)
		}
		e := entry{name: name, rgba: rgba}
		if n.entries[index] == e {
			return false
		}
		n.entries[index] = e
		return true
	})
	return nil
}

// SetColorName renames the entry at index.
func (n *Node) SetColorName(index int, name string) error {
	var err error
	n.mutate(func() bool {
		if index < 0 || index >= len(n.entries) {
			err = fmt.Errorf("%w: index %d out of range", ErrInvalidColor, index)
			return false
		}
		if n.entries[index].name == name {
			return false
		}
		n.entries[index].name = name
		return true
	})
	return err
}

// Reset empties the table and marks names as not initialised.
func (n *Node) Reset() {
	n.mutate(func() bool {
		if len(n.entries) == 0 && !n.namesInitialised {
			return false
		}
		n.entries = nil
		n.namesInitialised = false
		return true
	})
}

// BeginModify starts a batch: observers are told once, at the matching
// EndModify, if anything changed in between. Batches nest.
func (n *Node) BeginModify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.batchDepth++
}

// EndModify closes a batch opened by BeginModify.
func (n *Node) EndModify() {
	for _, fn := range n.endBatch() {
		fn()
	}
}

func (n *Node) endBatch() []func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.batchDepth > 0 {
		n.batchDepth--
	}
	fire := n.batchDepth == 0 && n.dirty
	if fire {
		n.dirty = false
	}
	return n.snapshotObservers(fire)
}

// Subscribe registers fn to run after every change. The returned function
// cancels the registration and may be called more than once.
func (n *Node) Subscribe(fn func()) (unsubscribe func()) {
	id := n.nextObserverID.Inc()

	n.mu.Lock()
	n.observers = append(n.observers, observer{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.observers = slices.DeleteFunc(n.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// ObserverCount returns how many subscriptions are live.
func (n *Node) ObserverCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

// mutate applies change under the lock and notifies observers if it
// reports a change outside of a batch.
func (n *Node) mutate(change func() bool) {
	for _, fn := range n.apply(change) {
		fn()
	}
}

// apply runs change under the lock and returns the observers to notify.
func (n *Node) apply(change func() bool) []func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !change() {
		return nil
	}
	if n.batchDepth > 0 {
		n.dirty = true
		return nil
	}
	return n.snapshotObservers(true)
}

func (n *Node) snapshotObservers(fire bool) []func() {
	if !fire {
		return nil
	}
	fns := make([]func(), len(n.observers))
	for i, o := range n.observers {
		fns[i] = o.fn
	}
	return fns
}

func checkIndex(index int) error {
	if index < 0 || index > MaxColorIndex {
		return fmt.Errorf("%w: index %d out of [0,%d]", ErrInvalidColor, index, MaxColorIndex)
	}
	return nil
}

func (n *Node) resize(count int) {
	if count <= len(n.entries) {
		n.entries = n.entries[:count]
		return
	}
	n.entries = append(n.entries, make([]entry, count-len(n.entries))...)
}

type tableView struct {
	n *Node
}

func (t tableView) NumberOfColors() int { return t.n.NumberOfColors() }

func (t tableView) TableValue(index int) [4]float64 { return t.n.TableValue(index) }
