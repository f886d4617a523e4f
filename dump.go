package recipepairs

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// Dump pretty-prints v to stdout prefixed with the caller's location.
func Dump(v ...any) {
	dump(os.Stdout, 2, v...)
}

func dump(w io.Writer, skip int, v ...any) {
	_, file, line, _ := runtime.Caller(skip)
	args := append([]any{fmt.Sprintf("%s:%d:", file, line)}, v...)
	spew.Fdump(w, args...)
}
