package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPlayersAdded()
	IncMatchesRecorded(result string)
	IncRejected(reason string)
	ObserveRatingChange(points float64)
	SetPlayers(count int)
	ObserveStorageDuration(operation string, seconds float64)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
