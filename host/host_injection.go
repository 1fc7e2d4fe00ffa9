package host

import (
	"reflect"
	"strings"

	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/handler"
	"github.com/mogud/snowlog/option"
)

var optionContainerType = reflect.TypeOf((*option.IOptionInjector)(nil)).Elem()
var loggerContainerType = reflect.TypeOf((*logging.ILoggerInjector)(nil)).Elem()
var routineProviderType = reflect.TypeOf((*injection.IRoutineProvider)(nil)).Elem()

const componentConstructor = "ConstructComponent"

// Inject 调用 instance 所有以 Construct 开头的方法，参数从 scope 中解析
//
// ConstructComponent 总是最先调用，其余 Construct 方法中可以直接使用组件的 provider
func Inject(scope injection.IRoutineScope, instance any) {
	v := reflect.ValueOf(instance)
	vTy := v.Type()

	if fMethod, ok := vTy.MethodByName(componentConstructor); ok {
		callConstruct(scope, v, fMethod)
	}

	for i := 0; i < vTy.NumMethod(); i++ {
		fMethod := vTy.Method(i)
		if !strings.HasPrefix(fMethod.Name, "Construct") || fMethod.Name == componentConstructor {
			continue
		}
		callConstruct(scope, v, fMethod)
	}
}

func callConstruct(scope injection.IRoutineScope, v reflect.Value, fMethod reflect.Method) {
	fTy := fMethod.Type
	args := make([]reflect.Value, 0, fTy.NumIn())
	args = append(args, v)
	for j := 1; j < fTy.NumIn(); j++ {
		argTy := fTy.In(j)
		var argInstance any
		switch {
		case argTy == routineProviderType:
			argInstance = scope.GetProvider()
		case argTy.Implements(optionContainerType):
			repo := injection.GetRoutine[*option.Repository](scope.GetRoot().GetProvider())
			argInstance = repo.GetOption(argTy)
		case argTy.Implements(loggerContainerType):
			ch := injection.GetRoutine[*handler.CompoundHandler](scope.GetRoot().GetProvider())
			argInstance = ch.WrapToContainer(argTy)
		default:
			argInstance = scope.GetProvider().GetRoutine(argTy)
		}

		if argInstance == nil {
			args = append(args, reflect.Zero(argTy))
		} else {
			args = append(args, reflect.ValueOf(argInstance))
		}
	}
	fMethod.Func.Call(args)
}

// NewStruct 通过反射创建指定类型 T 的实例，类型 T 必须为结构体指针
func NewStruct[T any]() T {
	ty := reflect.TypeOf((*T)(nil)).Elem()
	return reflect.New(ty.Elem()).Interface().(T)
}
