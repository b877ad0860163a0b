package psyxml

import "github.com/Psychopath-H/psyxml/binding"

const (
	// DebugMode indicates psyxml mode is debug.
	DebugMode = "debug"
	// ReleaseMode indicates psyxml mode is release.
	ReleaseMode = "release"
	// TestMode indicates psyxml mode is test.
	TestMode = "test"
)

const (
	debugCode = iota
	releaseCode
	testCode
)

var psyxmlMode = debugCode
var modeName = DebugMode

// SetMode 设置运行模式，debug模式下绑定被拒绝时会打一条调试日志
func SetMode(value string) {
	switch value {
	case DebugMode, "":
		psyxmlMode = debugCode
		modeName = DebugMode
	case ReleaseMode:
		psyxmlMode = releaseCode
		modeName = ReleaseMode
	case TestMode:
		psyxmlMode = testCode
		modeName = TestMode
	default:
		panic("psyxml mode unknown: " + value)
	}
}

// Mode 返回当前的运行模式
func Mode() string {
	return modeName
}

// IsDebugging 返回是否运行在debug模式下
func IsDebugging() bool {
	return psyxmlMode == debugCode
}

func EnableJsonDecoderDisallowUnknownFields() {
	binding.DisallowUnknownFields = true
}

func DisableLocalBindValidation() {
	binding.UsingLocalValidate = false
}

// DisableBindValidation 关闭绑定后的结构体校验
func DisableBindValidation() {
	binding.Validator = nil
}

// SetMaxBodyBytes 设置请求体大小上限
func SetMaxBodyBytes(n int64) {
	binding.MaxBodyBytes = n
}
