package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleError(t *testing.T) {
	boom := errors.New("no such month")

	text := &OutputOptions{}
	if err := text.HandleError(&bytes.Buffer{}, boom); err != boom {
		t.Fatalf("text mode should return the error; got %v", err)
	}

	var out bytes.Buffer
	js := &OutputOptions{JSON: true}
	if err := js.HandleError(&out, boom); err != nil {
		t.Fatalf("json mode should swallow the error; got %v", err)
	}
	if got, want := out.String(), "{\"error\":\"no such month\"}\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	out.Reset()
	if err := js.HandleError(&out, nil); err != nil || out.Len() != 0 {
		t.Fatalf("nil error should print nothing; got %v %q", err, out.String())
	}
}
