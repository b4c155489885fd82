package relay

/* Outcome is the terminal state of one dispatch
 * Exactly one is reported per inbound request
 */
type Outcome int

const (
	Forwarded Outcome = iota + 1
	NotFound
	MalformedBody
	MissingField
	TransportFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Forwarded:
		return "forwarded"
	case NotFound:
		return "not_found"
	case MalformedBody:
		return "malformed_body"
	case MissingField:
		return "missing_field"
	case TransportFailed:
		return "transport_failed"
	default:
		return "unknown"
	}
}
