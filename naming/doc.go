// Package naming 根据名称提示推导 logger 的通道名
//
// 名称提示共三种：
//
//	naming.ExplicitName("billing")          // 原样使用
//	naming.TypeOf[OrderService]()           // 类型的简单名 "OrderService"
//	naming.Callback(func() {})              // 闭包的声明位置
//
// 闭包提示依赖 Inspector 提供的符号信息。运行时 Inspector 从 Go 运行时读取，
// 缺少符号信息的构建使用静态 Inspector，对闭包提示返回 ErrUnsupportedPlatform
package naming
