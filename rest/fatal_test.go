package rest

import "testing"

func TestIsFatalStatus_FatalSet(t *testing.T) {
	for _, code := range []int{400, 401, 402, 403, 404, 405, 413, 414, 415} {
		if !IsFatalStatus(code) {
			t.Errorf("expected %d to be fatal", code)
		}
	}
}

func TestIsFatalStatus_MissingStatus(t *testing.T) {
	if !IsFatalStatus(0) {
		t.Error("expected missing status to be fatal")
	}
}

func TestIsFatalStatus_Retryable(t *testing.T) {
	for _, code := range []int{200, 201, 204, 301, 302, 406, 408, 409, 410, 418, 429, 500, 502, 503, 504} {
		if IsFatalStatus(code) {
			t.Errorf("expected %d to be retryable", code)
		}
	}
}
