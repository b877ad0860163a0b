package psyxml

import (
	"fmt"

	"github.com/Psychopath-H/psyxml/logger"
)

// DebugLogger debug模式下内部的调试信息往这里打
var DebugLogger = logger.Default()

func debugPrint(format string, values ...any) {
	if IsDebugging() {
		_ = DebugLogger.Debug(fmt.Sprintf(format, values...))
	}
}

// debugPrintRejection 绑定被拒绝时记录状态码和原因
func debugPrintRejection(rej *Rejection) {
	debugPrint("request rejected with %d: %s", rej.StatusCode(), rej.Error())
}

func debugPrintError(err error) {
	if err != nil {
		debugPrint("render error: %v", err)
	}
}
