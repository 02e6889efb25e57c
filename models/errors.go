package models

// ErrorEntry is a single failure recorded during an orchestration attempt.
// The cause is retained for logging but never serialized.
type ErrorEntry struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Cause   error  `json:"-"`
}

// ErrorList collects the failures of one payment attempt. Callers must check
// Has before trusting any success value returned alongside it. Entries are
// kept in insertion order with no deduplication.
type ErrorList struct {
	entries []ErrorEntry
}

// NewErrorList returns an empty error list scoped to one orchestration attempt
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an entry built from the given error
func (e *ErrorList) Add(err error) {
	e.entries = append(e.entries, ErrorEntry{Message: err.Error(), Cause: err})
}

// AddMessage appends an entry with a plain message and no cause
func (e *ErrorList) AddMessage(message string) {
	e.entries = append(e.entries, ErrorEntry{Message: message})
}

// AddWithCode appends an entry carrying a translated message, an upstream
// error code and the original cause
func (e *ErrorList) AddWithCode(message, code string, cause error) {
	e.entries = append(e.entries, ErrorEntry{Message: message, Code: code, Cause: cause})
}

// Has reports whether at least one failure has been recorded
func (e *ErrorList) Has() bool {
	return len(e.entries) > 0
}

// Errors returns a copy of the recorded entries for display
func (e *ErrorList) Errors() []ErrorEntry {
	entries := make([]ErrorEntry, len(e.entries))
	copy(entries, e.entries)
	return entries
}
