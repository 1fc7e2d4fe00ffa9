package task

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const defaultPoolSize = 10000

var (
	once sync.Once
	p    *ants.PoolWithFunc
)

func pool() *ants.PoolWithFunc {
	once.Do(func() {
		var err error
		p, err = ants.NewPoolWithFunc(defaultPoolSize, func(f any) {
			(f.(func()))()
		})
		if err != nil {
			panic(fmt.Sprintf("init goroutine pool: %v", err))
		}
	})
	return p
}

// Execute 在共享协程池中执行 f，协程池无法接收时退化为新建协程
func Execute(f func()) {
	if err := pool().Invoke(f); err != nil {
		go f()
	}
}
