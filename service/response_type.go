package service

// ResponseType enumerates the classes of outcome a service call can produce
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
