package apperr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestNewInvalidViolationsLeavesSentinelUntouched(t *testing.T) {
	e := NewInvalidViolations([]string{"name is required"})
	if e.Extras == nil {
		t.Fatal("Expected violations in extras, got nil")
	}
	if _, ok := (*e.Extras)["violations"]; !ok {
		t.Error("Expected a violations key in extras")
	}
	if ErrInvalidReq.Extras != nil {
		t.Error("Expected the ErrInvalidReq sentinel to stay without extras")
	}
	if e.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", e.StatusCode)
	}
}

func TestSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{ErrInvalidReq, 400},
		{ErrUnauthorized, 401},
		{ErrNotFound, 404},
		{ErrInternalError, 500},
		{ErrUnavailable, 503},
	}
	for _, c := range cases {
		if c.err.StatusCode != c.want {
			t.Errorf("Expected %s to carry status %d, got %d", c.err.ErrorCode, c.want, c.err.StatusCode)
		}
	}
}
