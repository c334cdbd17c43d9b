package factory

import (
	"time"

	"github.com/mcoot/blackjack/internal/dependencies/mocks"
	"github.com/mcoot/blackjack/internal/services/dealer"
	"github.com/mcoot/blackjack/internal/storage/memory"
	"github.com/mcoot/blackjack/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MemoryStorage *memory.Storage
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Shuffles leave decks in generation order unless results are queued.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockRandom.Identity = true

	app := newWithDependencies(store, mockClock, mockRandom, dealer.DefaultPolicy(), testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
	}
}
