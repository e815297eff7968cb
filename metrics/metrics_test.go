package metrics

import "testing"

func TestCollectorMethodsDoNotPanic(t *testing.T) {
	c := New()
	c.FrameReceived("MSO")
	c.FrameSent("TINY")
	c.FrameDropped("slow_subscriber")
	c.Error("decode")
	c.Reconnect()
	c.ConnectLatency(0.05)
	c.SetLevel(3)
}
