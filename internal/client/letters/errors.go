package letters

import "fmt"

// StoreWriteError reports a failed submit. The draft is left untouched.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string { return fmt.Sprintf("store write: %v", e.Err) }
func (e *StoreWriteError) Unwrap() error { return e.Err }

// StoreDeleteError reports a failed cancel of letter ID.
type StoreDeleteError struct {
	ID  string
	Err error
}

func (e *StoreDeleteError) Error() string {
	return fmt.Sprintf("store delete %s: %v", e.ID, e.Err)
}
func (e *StoreDeleteError) Unwrap() error { return e.Err }

// SubscriptionError reports that the live list for Path could not be opened
// or was interrupted.
type SubscriptionError struct {
	Path string
	Err  error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription %s: %v", e.Path, e.Err)
}
func (e *SubscriptionError) Unwrap() error { return e.Err }
