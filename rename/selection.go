package rename

// Selection restricts which functions the renaming, normalization,
// cross-referencing and annotation passes touch. An empty selection
// means every function participates. Functions match by current name
// or by the 1-based source line their declaration starts on.
type Selection struct {
	names map[string]struct{}
	lines map[int]struct{}
}

func NewSelection(names []string, lines []int) *Selection {
	s := &Selection{
		names: make(map[string]struct{}, len(names)),
		lines: make(map[int]struct{}, len(lines)),
	}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	for _, l := range lines {
		s.lines[l] = struct{}{}
	}
	return s
}

func (s *Selection) Empty() bool {
	return s == nil || (len(s.names) == 0 && len(s.lines) == 0)
}

// Matches reports whether a function with the given current name,
// starting on the given line, participates in the passes.
func (s *Selection) Matches(name string, line int) bool {
	if s.Empty() {
		return true
	}
	if _, ok := s.names[name]; ok {
		return true
	}
	_, ok := s.lines[line]
	return ok
}

// AddName marks a freshly minted name as selected, so code paths that
// reference the function under its new name remain eligible for the
// later passes.
func (s *Selection) AddName(name string) {
	if s.Empty() {
		return
	}
	s.names[name] = struct{}{}
}
