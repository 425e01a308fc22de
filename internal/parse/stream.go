package parse

import "github.com/ef-ds/deque"

// Item is a raw argument waiting to be processed
type Item struct {
	Raw string
	// FromResponseFile marks tokens spliced in from a response file; they are never expanded again
	FromResponseFile bool
}

// Stream is the queue of arguments consumed by the parser. Tokens can be spliced in
// ahead of the remaining input, which is how response files are expanded in place.
type Stream struct {
	items    *deque.Deque
	consumed int
}

// NewStream creates a Stream over args
func NewStream(args []string) *Stream {
	s := &Stream{items: deque.New()}
	for _, a := range args {
		s.items.PushBack(Item{Raw: a})
	}
	return s
}

// Next removes and returns the next item
func (s *Stream) Next() (Item, bool) {
	v, ok := s.items.PopFront()
	if !ok {
		return Item{}, false
	}
	s.consumed++
	return v.(Item), true
}

// Peek returns the next item without removing it
func (s *Stream) Peek() (Item, bool) {
	v, ok := s.items.Front()
	if !ok {
		return Item{}, false
	}
	return v.(Item), true
}

// InsertNext places raws in order ahead of the remaining items
func (s *Stream) InsertNext(raws []string, fromResponseFile bool) {
	for i := len(raws) - 1; i >= 0; i-- {
		s.items.PushFront(Item{Raw: raws[i], FromResponseFile: fromResponseFile})
	}
}

// Drain removes and returns all remaining raw arguments
func (s *Stream) Drain() []string {
	out := make([]string, 0, s.items.Len())
	for {
		it, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, it.Raw)
	}
}

// Len returns the number of items not yet consumed
func (s *Stream) Len() int {
	return s.items.Len()
}

// Consumed returns how many items have been taken from the stream
func (s *Stream) Consumed() int {
	return s.consumed
}
