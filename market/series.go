package market

// Series is a bounded rolling window of past prices for one symbol.
// The oldest sample is evicted once the window is full. The simulator is
// the only writer; other components get read-only copies via Values.
type Series struct {
	prices   []float64
	capacity int
}

func NewSeries(capacity int) *Series {
	return &Series{
		prices:   make([]float64, 0, capacity),
		capacity: capacity,
	}
}

func (s *Series) Append(p float64) {
	s.prices = append(s.prices, p)
	if len(s.prices) > s.capacity {
		s.prices = s.prices[1:]
	}
}

func (s *Series) Len() int { return len(s.prices) }

func (s *Series) Cap() int { return s.capacity }

// Last returns the most recent price, or false if the series is empty.
func (s *Series) Last() (float64, bool) {
	if len(s.prices) == 0 {
		return 0, false
	}
	return s.prices[len(s.prices)-1], true
}

// Values returns a copy of the window, oldest first.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.prices))
	copy(out, s.prices)
	return out
}
