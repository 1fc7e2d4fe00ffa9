// Package loginject 将 logging 门面接入 DI 容器。
//
// 它提供两部分功能：
//
//   - ContainerLogger 把容器自身的诊断日志转发到通道 "snow"；
//   - AddLoggerFactory 注册带参数的 logging.ILogger 工厂，配合 Inject* 系列函数，
//     按组件类型、显式名称或回调函数的声明位置得到一个延迟解析的 logger。
package loginject
