package ui

// Store is the identifier-keyed state that survives between frames: grid
// sizing memory, widget interaction state, whatever a widget wants to
// remember. Values live for the process lifetime; nothing is evicted when
// an identifier stops being reopened. That is a known unbounded-growth
// limitation, accepted because dropping entries would reset layouts whose
// identifiers are rebuilt dynamically.
//
// Frames run to completion one at a time, so plain map access suffices;
// overlapping frame execution would need this to grow a copy-on-read /
// compare-and-commit protocol instead.
type Store struct {
	m map[ID]any
}

func NewStore() *Store { return &Store{m: make(map[ID]any, 64)} }

func (s *Store) Load(id ID) (any, bool) {
	v, ok := s.m[id]
	return v, ok
}

func (s *Store) Insert(id ID, v any) { s.m[id] = v }

func (s *Store) Len() int { return len(s.m) }
