package drivers_test

import (
	"bytes"
	"testing"

	"github.com/embeddedkit/hal/drivers"
	"github.com/embeddedkit/hal/sys"
)

func TestNewSystemWriter(t *testing.T) {
	var sink bytes.Buffer
	w := drivers.NewSystemWriter(&sink)

	m := sys.NewManager()
	reg := sys.NewStatic(1)
	m.Set(reg)
	if err := reg.AddWriter(sys.WriteHandler(w)); err != nil {
		t.Fatal(err)
	}

	if n := m.Write(sys.Stdout, []byte("ok")); n != 2 {
		t.Error("write count:", n)
	}
	if sink.String() != "ok" {
		t.Errorf("sink received %q", sink.String())
	}
}
