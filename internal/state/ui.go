package state

import "sync"

// UIStore holds the process-wide loading flag and error banner shared by all
// domain stores. Last writer wins.
type UIStore struct {
	mu      sync.Mutex
	loading bool
	err     string
}

func NewUIStore() *UIStore {
	return &UIStore{}
}

func (u *UIStore) SetLoading(loading bool) {
	u.mu.Lock()
	u.loading = loading
	u.mu.Unlock()
}

func (u *UIStore) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

// SetError raises the banner with the latest error message.
func (u *UIStore) SetError(message string) {
	u.mu.Lock()
	u.err = message
	u.mu.Unlock()
}

// ClearError dismisses the banner.
func (u *UIStore) ClearError() {
	u.mu.Lock()
	u.err = ""
	u.mu.Unlock()
}

// Error returns the current banner message, empty when dismissed.
func (u *UIStore) Error() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.err
}
