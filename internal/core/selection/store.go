package selection

import (
	"sync"

	"treepick/internal/core/tree"
)

// Snapshot is a consistent view of the forest and its selection.
type Snapshot struct {
	Forest *tree.Forest
	State  State
}

// Store holds the forest and the selection behind one lock so operations
// coming from several goroutines never interleave.
type Store struct {
	mu     sync.Mutex
	forest *tree.Forest
	state  State
}

// NewStore starts with an empty selection over f.
func NewStore(f *tree.Forest) *Store {
	return &Store{forest: f, state: NewState()}
}

// Apply runs op against the current pair and stores its result.
func (s *Store) Apply(op func(State, *tree.Forest) State) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = op(s.state, s.forest)
	return Snapshot{Forest: s.forest, State: s.state.Clone()}
}

func (s *Store) Toggle(key tree.Key, checked bool) Snapshot {
	return s.Apply(func(st State, f *tree.Forest) State { return Toggle(st, f, key, checked) })
}

func (s *Store) SelectAll(checked bool) Snapshot {
	return s.Apply(func(st State, f *tree.Forest) State { return SelectAll(st, f, checked) })
}

func (s *Store) Remove(key tree.Key) Snapshot {
	return s.Apply(func(st State, f *tree.Forest) State { return Remove(st, f, key) })
}

func (s *Store) Sync(keys []tree.Key) Snapshot {
	return s.Apply(func(_ State, f *tree.Forest) State { return SyncFromExternalValue(f, keys) })
}

// SetForest swaps in a new forest and re-derives the selection against it
// within the same critical section.
func (s *Store) SetForest(f *tree.Forest) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forest = f
	s.state = Normalize(s.state, f)
	return Snapshot{Forest: s.forest, State: s.state.Clone()}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Forest: s.forest, State: s.state.Clone()}
}
