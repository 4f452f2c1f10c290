package mocks

import (
	"github.com/mcoot/scoresheet/internal/dependencies/random"
)

// MockRandom replays queued results. Once the String queue is drained it
// counts through the alphabet instead, so repeated calls never collide.
type MockRandom struct {
	IntnResults   []int
	StringResults []string

	fallback int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0
func (r *MockRandom) Intn(n int) int {
	if len(r.IntnResults) == 0 {
		return 0
	}
	v := r.IntnResults[0]
	r.IntnResults = r.IntnResults[1:]
	return v
}

// String returns the next queued result, or the next deterministic string
func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.StringResults) > 0 {
		v := r.StringResults[0]
		r.StringResults = r.StringResults[1:]
		return v
	}
	if length <= 0 || alphabet == "" {
		return ""
	}

	chars := []rune(alphabet)
	out := make([]rune, length)
	n := r.fallback
	for i := length - 1; i >= 0; i-- {
		out[i] = chars[n%len(chars)]
		n /= len(chars)
	}
	r.fallback++
	return string(out)
}

// QueueIntn adds values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
