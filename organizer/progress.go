package organizer

// ProgressSink 接收整理过程中的进度事件
// percent 为 0-100 的整数；实现会在文件操作之间被同步调用，不能无限阻塞
type ProgressSink interface {
	Emit(percent int, message string)
}

// SinkFunc 将函数适配为 ProgressSink
type SinkFunc func(percent int, message string)

func (f SinkFunc) Emit(percent int, message string) {
	f(percent, message)
}

// NopSink 空实现，调用方不关心进度时使用
type NopSink struct{}

func (NopSink) Emit(int, string) {}
