package frame

import (
	"bytes"
	"io"
	"testing"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	body := []byte{1, 3, 0, 0} // compressed Tiny ping
	var f Frame
	if err := f.Set(body); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var buf bytes.Buffer
	n, err := f.Marshal(&buf, 0)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if n != len(body) {
		t.Fatalf("Marshal wrote %d bytes, want %d", n, len(body))
	}

	var g Frame
	skip, err := g.Unmarshal(&buf, 0)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if skip != len(body) {
		t.Fatalf("Unmarshal consumed %d bytes, want %d", skip, len(body))
	}
	if !bytes.Equal(g.Bytes(), body) {
		t.Fatalf("got %v, want %v", g.Bytes(), body)
	}
}

// TestTruncatedFrame is scenario S7: a buffer claiming 8 bytes (2*4)
// but only delivering 3 must not synthesise a packet.
func TestTruncatedFrame(t *testing.T) {
	r := bytes.NewReader([]byte{2, 3, 0})

	var f Frame
	_, err := f.Unmarshal(r, 0)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("Unmarshal on truncated frame: got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestZeroLengthByteRejected(t *testing.T) {
	r := bytes.NewReader([]byte{0})
	var f Frame
	_, err := f.Unmarshal(r, 0)
	if err != ErrBadLength {
		t.Fatalf("got %v, want ErrBadLength", err)
	}
}

func TestResumePartialRead(t *testing.T) {
	body := []byte{2, 5, 7, 9, 0, 0, 0, 0}
	var f Frame
	skip, err := f.Unmarshal(bytes.NewReader(body[:1]), 0)
	if err != io.ErrUnexpectedEOF && err != io.EOF {
		t.Fatalf("first partial read: unexpected err %v", err)
	}
	skip, err = f.Unmarshal(bytes.NewReader(body[skip:]), skip)
	if err != nil {
		t.Fatalf("resumed read: %v", err)
	}
	if !bytes.Equal(f.Bytes(), body) {
		t.Fatalf("got %v, want %v", f.Bytes(), body)
	}
}

func TestSetRejectsUnaligned(t *testing.T) {
	var f Frame
	if err := f.Set([]byte{1, 2, 3}); err != ErrNotAligned {
		t.Fatalf("got %v, want ErrNotAligned", err)
	}
}
