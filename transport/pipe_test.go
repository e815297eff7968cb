package transport

import (
	"testing"
)

func TestPipeFullDuplex(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	msg := []byte{1, 3, 0, 0}
	done := make(chan error, 1)
	go func() {
		_, err := a.Write(msg)
		done <- err
	}()

	buf := make([]byte, len(msg))
	n, err := b.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(msg) {
		t.Fatalf("Read got %d bytes, want %d", n, len(msg))
	}
	if err := <-done; err != nil {
		t.Fatalf("Write: %v", err)
	}
	for i := range msg {
		if buf[i] != msg[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, buf[i], msg[i])
		}
	}
}
