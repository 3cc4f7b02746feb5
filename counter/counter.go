// Package counter tracks how many times in a row the same event occurred.
package counter

import (
	"errors"
	"strconv"
)

// ErrInvalidLimit is returned when the display limit is not above one.
var ErrInvalidLimit = errors.New("counter limit must be greater than 1")

// Counter holds the run length of consecutive equal events. The zero value
// is not usable; call New.
type Counter struct {
	limit   int
	count   int
	prev    string
	hasPrev bool
}

// New returns a counter whose String caps at limit ("9+").
func New(limit int) (*Counter, error) {
	if limit <= 1 {
		return nil, ErrInvalidLimit
	}
	return &Counter{limit: limit, count: 1}, nil
}

// Apply records event and reports whether it repeats the previous one.
func (c *Counter) Apply(event string) bool {
	if c.hasPrev && c.prev == event {
		c.count++
	} else {
		c.count = 1
	}
	c.prev = event
	c.hasPrev = true
	return c.count > 1
}

// Reset starts a new run; the next event counts as the first.
func (c *Counter) Reset() {
	c.count = 1
	c.prev = ""
	c.hasPrev = false
}

func (c *Counter) Count() int { return c.count }

func (c *Counter) Limit() int { return c.limit }

// String formats the run: "" for no repeat, "×N" below the limit and
// "limit+" from the limit on.
func (c *Counter) String() string {
	switch {
	case c.count <= 1:
		return ""
	case c.count < c.limit:
		return "×" + strconv.Itoa(c.count)
	default:
		return strconv.Itoa(c.limit) + "+"
	}
}
