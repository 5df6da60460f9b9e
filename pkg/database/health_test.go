package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealth_Check(t *testing.T) {
	h := NewHealth(stubPinger{})
	st := h.Check(context.Background())
	assert.True(t, st.Connected)
	assert.Empty(t, st.LastError)
	assert.False(t, st.CheckedAt.IsZero())

	h.pinger = stubPinger{err: errors.New("connection refused")}
	st = h.Check(context.Background())
	assert.False(t, st.Connected)
	assert.Equal(t, "connection refused", st.LastError)
}

func TestHealth_NilPinger(t *testing.T) {
	st := NewHealth(nil).Check(context.Background())
	assert.False(t, st.Connected)
	assert.NotEmpty(t, st.LastError)
}

func TestHealth_ConcurrentAccess(t *testing.T) {
	h := NewHealth(stubPinger{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				h.Record(nil)
			} else {
				h.Record(errors.New("down"))
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = h.Status()
		}()
	}
	wg.Wait()
}

func TestHealth_OnCheck(t *testing.T) {
	h := NewHealth(stubPinger{err: errors.New("timeout")})
	var seen []bool
	h.OnCheck(func(s Status) { seen = append(seen, s.Connected) })

	h.Check(context.Background())
	h.Record(nil)
	assert.Equal(t, []bool{false, true}, seen)
}
