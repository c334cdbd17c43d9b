package mocks

import (
	"github.com/mcoot/blackjack/internal/dependencies/random"
)

// MockRandom answers Intn from a queue so shuffles and bot choices can be
// scripted in tests
type MockRandom struct {
	IntnResults []int
	next        int

	// Identity makes Intn(n) return n-1 once the queue is empty, so a
	// shuffle leaves every card where it was
	Identity bool

	// Shuffles counts calls to Shuffle
	Shuffles int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn pops the next queued value. An empty queue yields 0, or n-1 in
// Identity mode.
func (r *MockRandom) Intn(n int) int {
	if r.next < len(r.IntnResults) {
		v := r.IntnResults[r.next]
		r.next++
		return v
	}
	if r.Identity && n > 0 {
		return n - 1
	}
	return 0
}

// Shuffle runs the real Fisher-Yates walk over the scripted Intn values
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	r.Shuffles++
	random.FisherYates(r, n, swap)
}

// QueueIntn appends values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Reset empties the queue and the call counters
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.next = 0
	r.Shuffles = 0
}
