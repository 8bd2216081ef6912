package consoles

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type writerConsole struct {
	mutex sync.Mutex
	w     io.Writer
}

func NewStdErrConsole() Console {
	return NewWriterConsole(os.Stderr)
}

func NewWriterConsole(w io.Writer) Console {
	return &writerConsole{w: w}
}

func (o *writerConsole) Printf(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	_, _ = fmt.Fprintf(o.w, format, a...)
}

func (o *writerConsole) Finish() {
}
