// Package domain models the weather lookup widget's state and its
// collaborators.
//
// # State
//
// The widget holds one immutable [State] record of {Query, Result, Err}.
// Every fetch completion replaces the record wholesale through
// [State.WithResult] or [State.WithError], so Result and Err are never both
// set. The rendering mode is derived from the record:
//
//	Err != ""       -> ModeError
//	Result != nil   -> ModeResult
//	otherwise       -> ModeLoading
//
// # Queries
//
// A [Query] is a trimmed, non-empty city name. [ParseQuery] rejects empty or
// whitespace-only input with [ErrEmptyQuery] before any network call is made.
//
// # Provider
//
// A [Provider] returns the current conditions for a city. Providers report an
// unknown city with [ErrCityNotFound]. Any other error is a transport or parse
// failure and is only ever shown to the user as [MsgFetchFailed].
//
// # Icons
//
// [ResolveIcon] maps a condition label ("Clear", "Clouds", "Rain", "Drizzle",
// "Snow") to a static icon path. Keys are case-sensitive and any other label
// falls back to [IconClear].
package domain
