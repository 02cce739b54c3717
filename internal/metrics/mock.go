package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	playersAdded     int
	matchesRecorded  map[string]int
	rejected         map[string]int
	ratingChanges    []float64
	players          int
	storageDurations map[string][]float64
	notifSent        int
	notifFailed      int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		matchesRecorded:  make(map[string]int),
		rejected:         make(map[string]int),
		ratingChanges:    make([]float64, 0),
		storageDurations: make(map[string][]float64),
	}
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

func (m *Mock) IncMatchesRecorded(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded[result]++
}

func (m *Mock) IncRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *Mock) ObserveRatingChange(points float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingChanges = append(m.ratingChanges, points)
}

func (m *Mock) SetPlayers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = count
}

func (m *Mock) ObserveStorageDuration(operation string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageDurations[operation] = append(m.storageDurations[operation], seconds)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersAdded returns the number of times IncPlayersAdded was called.
func (m *Mock) PlayersAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersAdded
}

// MatchesRecorded returns how many matches were recorded with the given result.
func (m *Mock) MatchesRecorded(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded[result]
}

// Rejected returns how many operations were rejected for reason.
func (m *Mock) Rejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rejected[reason]
}

// RatingChanges returns every observed rating change in call order.
func (m *Mock) RatingChanges() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.ratingChanges...)
}

// Players returns the last value passed to SetPlayers.
func (m *Mock) Players() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.players
}

// StorageCalls returns how many durations were observed for operation.
func (m *Mock) StorageCalls(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.storageDurations[operation])
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
