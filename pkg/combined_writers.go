package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans each write out to all writers. A failing writer does
// not stop the others; its error is combined into the returned one.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{
		Writers: make([]io.Writer, 0, len(writers)),
	}
	for _, w := range writers {
		if w != nil {
			cw.Writers = append(cw.Writers, w)
		}
	}
	return cw
}

// Write reports len(p) if at least one writer took the whole payload.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err      error
		anyWrote bool
	)
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		anyWrote = true
	}
	if anyWrote {
		return len(p), err
	}
	return 0, err
}
