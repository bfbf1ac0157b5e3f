package viewmodel

import "sync"

// subscribers fans state out to buffered(1) channels. A slow reader only ever
// sees the most recent state.
type subscribers[S any] struct {
	mu     sync.Mutex
	next   int
	chans  map[int]chan S
	closed bool
}

func (s *subscribers[S]) add(initial S) (<-chan S, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan S, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	if s.chans == nil {
		s.chans = make(map[int]chan S)
	}

	id := s.next
	s.next++
	s.chans[id] = ch
	ch <- initial

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if c, ok := s.chans[id]; ok {
				delete(s.chans, id)
				close(c)
			}
		})
	}
}

func (s *subscribers[S]) publish(state S) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.chans {
		select {
		case ch <- state:
			continue
		default:
		}

		// drop the stale state and replace it
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- state:
		default:
		}
	}
}

func (s *subscribers[S]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.chans {
		delete(s.chans, id)
		close(ch)
	}
	s.closed = true
}
