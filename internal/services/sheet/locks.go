package sheet

import (
	"sync"

	"github.com/mcoot/scoresheet/internal/model"
)

type sheetLock struct {
	mu   sync.Mutex
	refs int // Holders plus waiters; guarded by sheetLocks.mu
}

// sheetLocks hands out one mutex per sheet code. An entry lives only while
// some caller holds or waits on it.
type sheetLocks struct {
	mu    sync.Mutex
	locks map[model.SheetCode]*sheetLock
}

func newSheetLocks() *sheetLocks {
	return &sheetLocks{locks: make(map[model.SheetCode]*sheetLock)}
}

// lock acquires the mutex for code and returns its release function
func (l *sheetLocks) lock(code model.SheetCode) func() {
	l.mu.Lock()
	sl, ok := l.locks[code]
	if !ok {
		sl = &sheetLock{}
		l.locks[code] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, code)
		}
	}
}

// held returns how many codes currently have a lock entry
func (l *sheetLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
