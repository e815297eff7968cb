package transport

import "io"

type pipeEnd struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p *pipeEnd) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p *pipeEnd) Write(b []byte) (int, error) { return p.w.Write(b) }

func (p *pipeEnd) Close() error {
	p.r.Close()
	return p.w.Close()
}

// Pipe returns two connected in-memory Conns for tests: writes to one
// end are delivered to reads on the other. Grounded on session.Pipe's
// synchronous full-duplex pair, simplified to the byte-stream level
// since InSim has no class1/class2 priority split to model.
func Pipe() (Conn, Conn) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()
	a := &pipeEnd{r: br, w: aw}
	b := &pipeEnd{r: ar, w: bw}
	return a, b
}
