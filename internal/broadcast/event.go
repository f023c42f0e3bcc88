package broadcast

// EventKind names the two mutations pushed to stream listeners.
type EventKind string

const (
	// EventAdded carries a freshly stored classification result.
	EventAdded EventKind = "add"
	// EventCleared announces that a user wiped their history.
	EventCleared EventKind = "clear"
)

// ResultSnapshot is the denormalized view of a stored result that goes out on
// the wire, including the owner's username. Snapshots are never persisted.
type ResultSnapshot struct {
	ID                 string  `json:"id"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	R                  float64 `json:"r"`
	Hit                bool    `json:"hit"`
	ExecutionTimeNanos int64   `json:"executionTime,string"`
	CreatedAt          int64   `json:"timestamp"`
	Username           string  `json:"username"`
}

// Event is the ephemeral tagged variant delivered to listeners.
// Exactly one of the payload fields is meaningful for a given kind:
// Result for EventAdded, Username for EventCleared.
type Event struct {
	Kind     EventKind
	Result   *ResultSnapshot
	Username string
}

// Added builds an add event from a result snapshot.
func Added(snapshot *ResultSnapshot) Event {
	return Event{Kind: EventAdded, Result: snapshot}
}

// Cleared builds a clear event for the given username.
func Cleared(username string) Event {
	return Event{Kind: EventCleared, Username: username}
}
