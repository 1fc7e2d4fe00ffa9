package syncext

import (
	"sync/atomic"
	"time"

	"github.com/mogud/snowlog/meta"
)

// TimeoutWaitGroup 与 sync.WaitGroup 类似，但支持超时等待；一旦等待结束（完成或超时）便不再接受 Add
type TimeoutWaitGroup struct {
	noCopy meta.NoCopy

	c       chan struct{}
	counter atomic.Int32
}

func NewTimeoutWaitGroup() *TimeoutWaitGroup {
	return &TimeoutWaitGroup{
		c: make(chan struct{}),
	}
}

func (ss *TimeoutWaitGroup) Done() {
	var v int32
	for {
		v = ss.counter.Load()
		switch {
		case v <= 0:
			return
		case v == 1:
			if ss.counter.CompareAndSwap(v, -1) {
				close(ss.c)
				return
			}
		default:
			if ss.counter.CompareAndSwap(v, v-1) {
				return
			}
		}
	}
}

// Add 返回 false 表示等待已结束
func (ss *TimeoutWaitGroup) Add(n int) bool {
	for {
		v := ss.counter.Load()
		if v < 0 { // finished
			return false
		}

		if ss.counter.CompareAndSwap(v, v+int32(n)) {
			return true
		}
	}
}

// WaitTimeout 在计数归零时返回 true，超时返回 false
func (ss *TimeoutWaitGroup) WaitTimeout(dur time.Duration) bool {
	for {
		v := ss.counter.Load()
		if v != 0 {
			break
		}

		if ss.counter.CompareAndSwap(v, -1) {
			close(ss.c)
			return true
		}
	}

	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-ss.c:
		return true
	case <-timer.C:
		for {
			v := ss.counter.Load()
			if v < 0 {
				return false
			}

			if ss.counter.CompareAndSwap(v, -1) {
				close(ss.c)
				return false
			}
		}
	}
}

func (ss *TimeoutWaitGroup) Wait() {
	for {
		v := ss.counter.Load()
		if v != 0 {
			break
		}

		if ss.counter.CompareAndSwap(v, -1) {
			close(ss.c)
			return
		}
	}

	<-ss.c
}
