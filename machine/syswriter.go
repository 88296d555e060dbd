package machine

import "github.com/embeddedkit/hal/sys"

type defaultWriter int

// DefaultWriter wraps DefaultWrite in an io.Writer.
const DefaultWriter defaultWriter = sys.Stdout

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
