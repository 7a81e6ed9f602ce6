package swrcache_test

import (
	"sync"
	"time"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type logRecord struct {
	msg string
	err error
}

type logRecorder struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *logRecorder) log(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, logRecord{msg: msg, err: err})
}

func (l *logRecorder) find(msg string) (logRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.msg == msg {
			return r, true
		}
	}

	return logRecord{}, false
}

func nowPlusHour() time.Time {
	return time.Now().Add(time.Hour)
}
