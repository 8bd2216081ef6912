package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/pescuma/devhours/lib/utils"
)

// progressConsole shows each message as the description of a spinner and counts messages as steps.
type progressConsole struct {
	mutex sync.Mutex
	w     io.Writer
	bar   *progressbar.ProgressBar
}

func NewStdErrProgressConsole() Console {
	return NewProgressConsole(os.Stderr)
}

func NewProgressConsole(w io.Writer) Console {
	return &progressConsole{
		w:   w,
		bar: utils.NewProgressBar(-1, w),
	}
}

func (o *progressConsole) Printf(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	msg := strings.TrimSpace(fmt.Sprintf(format, a...))
	if msg == "" {
		return
	}

	o.bar.Describe(utils.TruncateDescription(msg))
	_ = o.bar.Add(1)
}

func (o *progressConsole) Finish() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	_ = o.bar.Finish()
	_, _ = fmt.Fprintln(o.w)
}
