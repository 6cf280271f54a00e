package reveal

import (
	"fmt"
	"os"
)

// debugf prints a warning to stderr when debug mode is on. Missing
// elements and bad attribute values are silent in release mode: the
// user-visible failure is simply an animation that does not occur.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[reveal] "+format+"\n", args...)
}
