// Package status shows nested, transient "work in progress" indicators.
//
// Statuses form a stack. On an interactive terminal only the innermost one
// animates as a spinner; when it ends the one below it comes back. When
// output is piped each status is announced once as a plain line, so logs
// stay linear.
package status

// Status is a scoped indicator. Begin shows it, End removes it and Stop
// freezes whatever is currently animating.
type Status interface {
	Begin() Status
	End()
	Stop()
}

// Null is a Status that does nothing. It stands in when a status was asked
// for conditionally and the condition did not hold.
type Null struct{}

// Begin implements Status
func (n Null) Begin() Status { return n }

// End implements Status
func (Null) End() {}

// Stop implements Status
func (Null) Stop() {}

// Run shows s for the duration of fn. The status ends on every exit path,
// including a panic inside fn.
func Run(s Status, fn func() error) error {
	active := s.Begin()
	defer active.End()
	return fn()
}
