// Package backend holds what the three backend clients share: the error taxonomy
// (record absent vs backend unavailable), the GET helper of the two REST backends,
// and the fixed-delay throttle applied after every external call.
package backend
