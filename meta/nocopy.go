package meta

import "sync"

var _ = sync.Locker((*NoCopy)(nil))

// NoCopy 嵌入结构体后可由 go vet 检查值拷贝
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
