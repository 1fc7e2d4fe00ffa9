package injection

// IComponent 能够访问容器的组件
type IComponent interface {
	GetRoutineProvider() IRoutineProvider
}

var _ IComponent = (*Component)(nil)

// Component 嵌入到结构体中使其成为 IComponent，容器创建实例时通过 ConstructComponent 注入 provider
type Component struct {
	provider IRoutineProvider
}

func (ss *Component) ConstructComponent(provider IRoutineProvider) {
	ss.provider = provider
}

func (ss *Component) GetRoutineProvider() IRoutineProvider {
	return ss.provider
}
