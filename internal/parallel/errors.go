package parallel

import "sync"

// ErrorCollector records the first non-nil error reported by concurrent
// goroutines. The zero value is ready to use.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError stores err if it is the first non-nil error seen.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.once.Do(func() { c.err = err })
}

// Err returns the first recorded error, or nil. It must only be called once
// all writers are done.
func (c *ErrorCollector) Err() error {
	return c.err
}
