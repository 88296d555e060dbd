package sys

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newFaultManager(t *testing.T) (*Manager, *bytes.Buffer) {
	t.Helper()
	m := NewManager()
	reg := NewStatic(1)
	m.Set(reg)
	var out bytes.Buffer
	reg.AddWriter(func(fd int, p []byte) int {
		if fd != Stderr {
			t.Error("fault reported on fd", fd)
		}
		n, _ := out.Write(p)
		return n
	})
	return m, &out
}

func TestHandleFault(t *testing.T) {
	for _, tc := range []struct {
		name  string
		fault any
		want  string
	}{
		{"typed", &Fault{Code: 0xdead, Msg: "bus error"}, "fault 0x000000000000dead: bus error"},
		{"error", errors.New("broken pipe"), "broken pipe"},
		{"string", "assertion failed", "assertion failed"},
		{"opaque", 42, "unknown"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, out := newFaultManager(t)
			m.HandleFault(tc.fault)
			got := out.String()
			if !strings.Contains(got, "Uncaught fault: ") {
				t.Errorf("missing banner in %q", got)
			}
			if !strings.Contains(got, tc.want) {
				t.Errorf("got %q, want substring %q", got, tc.want)
			}
		})
	}
}

func TestHandleFaultNil(t *testing.T) {
	m, out := newFaultManager(t)
	m.HandleFault(nil)
	if out.Len() != 0 {
		t.Errorf("nil fault reported: %q", out.String())
	}
}

func TestHandleFaultLongMessage(t *testing.T) {
	m, out := newFaultManager(t)
	msg := strings.Repeat("x", 300)
	m.HandleFault(errors.New(msg))
	if !strings.Contains(out.String(), msg) {
		t.Error("long message truncated")
	}
}
