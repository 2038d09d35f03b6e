package trace

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// syncWriter serializes writes of rendered blocks to one destination.
type syncWriter struct {
	io.Writer
	*sync.Mutex
}

// writeLine writes s followed by a newline in a single Write call.
func (w *syncWriter) writeLine(s string) error {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	b = append(b, '\n')

	w.Lock()
	defer w.Unlock()

	n, err := w.Writer.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}

func writerIsTerminal(w io.Writer) bool {
	file, isFile := w.(*os.File)
	if !isFile {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
