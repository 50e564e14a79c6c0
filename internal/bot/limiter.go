package bot

import "sync"

// chatLimiter не даёт обрабатывать две команды одного чата одновременно: ответы приходят по порядку.
// Запись чата живёт, пока есть активные или ждущие команды, и удаляется последним unlock.
type chatLimiter struct {
	mu   sync.Mutex
	byID map[int64]*chatLock
}

type chatLock struct {
	sync.Mutex
	refs int // под chatLimiter.mu
}

func newChatLimiter() *chatLimiter {
	return &chatLimiter{byID: make(map[int64]*chatLock)}
}

func (l *chatLimiter) lock(chatID int64) func() {
	l.mu.Lock()
	m, ok := l.byID[chatID]
	if !ok {
		m = &chatLock{}
		l.byID[chatID] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.byID, chatID)
		}
		l.mu.Unlock()
	}
}
