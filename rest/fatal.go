package rest

// fatalStatuses are client errors that retrying an unchanged request
// cannot remedy. The set is a policy constant kept for compatibility;
// every other status, including 429 and all 5xx, stays retryable.
var fatalStatuses = map[int]struct{}{
	400: {},
	401: {},
	402: {},
	403: {},
	404: {},
	405: {},
	413: {},
	414: {},
	415: {},
}

// IsFatalStatus reports whether a response status makes retrying futile.
// A zero status means no status was obtained, which is also fatal: without
// a response there is nothing a retry of the same request would fix at the
// protocol level.
func IsFatalStatus(code int) bool {
	if code == 0 {
		return true
	}
	_, ok := fatalStatuses[code]
	return ok
}
