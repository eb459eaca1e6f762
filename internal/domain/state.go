package domain

// User-facing messages.
const (
	MsgEnterCity   = "Enter the city"
	MsgInvalidCity = "Enter a valid city name"
	MsgFetchFailed = "An error occurred while fetching the data."
)

// Mode is the rendering mode derived from a State.
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeResult
)

func (m Mode) String() string {
	switch m {
	case ModeError:
		return "error"
	case ModeResult:
		return "result"
	default:
		return "loading"
	}
}

// State is the widget's immutable state record. Result and Err are mutually
// exclusive; use WithResult and WithError to move between states.
type State struct {
	Query  Query
	Result *WeatherResult
	Err    string
}

// Mode reports which of loading, error or result the state renders as.
// An error takes priority over a result.
func (s State) Mode() Mode {
	switch {
	case s.Err != "":
		return ModeError
	case s.Result != nil:
		return ModeResult
	default:
		return ModeLoading
	}
}

// WithResult returns the state after a successful fetch for q.
func (s State) WithResult(q Query, r WeatherResult) State {
	return State{Query: q, Result: &r}
}

// WithError returns the state after a failed fetch or rejected input for q.
// Any previous result is dropped.
func (s State) WithError(q Query, msg string) State {
	return State{Query: q, Err: msg}
}
