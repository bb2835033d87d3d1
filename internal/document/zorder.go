package document

import "slices"

// BringToFront moves the selection to the tail of the order list, keeping
// its internal order.
func (s *Store) BringToFront() {
	s.reorderSelection(func(rest, selected []string) []string {
		return append(rest, selected...)
	})
}

// SendToBack moves the selection to the head of the order list.
func (s *Store) SendToBack() {
	s.reorderSelection(func(rest, selected []string) []string {
		return append(selected, rest...)
	})
}

// reorderSelection partitions the order list into selected and rest, asks
// combine for the new arrangement, and records a reorder command when the
// result differs.
func (s *Store) reorderSelection(combine func(rest, selected []string) []string) {
	if len(s.selection) == 0 {
		return
	}
	selected := make([]string, 0, len(s.selection))
	rest := make([]string, 0, len(s.order))
	for _, id := range s.order {
		if s.IsSelected(id) {
			selected = append(selected, id)
		} else {
			rest = append(rest, id)
		}
	}
	if len(selected) == 0 {
		return
	}
	s.applyOrder(combine(rest, selected))
}

// BringForward swaps each selected id with its next unselected neighbor.
// Scanning front to back keeps adjacent selected ids from blocking each
// other.
func (s *Store) BringForward() {
	if len(s.selection) == 0 {
		return
	}
	next := slices.Clone(s.order)
	for i := len(next) - 2; i >= 0; i-- {
		if s.IsSelected(next[i]) && !s.IsSelected(next[i+1]) {
			next[i], next[i+1] = next[i+1], next[i]
		}
	}
	s.applyOrder(next)
}

// SendBackward swaps each selected id with its previous unselected neighbor.
func (s *Store) SendBackward() {
	if len(s.selection) == 0 {
		return
	}
	next := slices.Clone(s.order)
	for i := 1; i < len(next); i++ {
		if s.IsSelected(next[i]) && !s.IsSelected(next[i-1]) {
			next[i], next[i-1] = next[i-1], next[i]
		}
	}
	s.applyOrder(next)
}

// applyOrder swaps in the new order list, recording a reorder command
// holding both full lists. No-op if nothing moved.
func (s *Store) applyOrder(next []string) {
	if slices.Equal(s.order, next) {
		return
	}
	prev := slices.Clone(s.order)
	s.order = next
	s.history.Record(Command{
		Type:      CommandReorder,
		PrevOrder: prev,
		NewOrder:  slices.Clone(next),
	})
}
