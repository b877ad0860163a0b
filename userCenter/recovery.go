package main

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/Psychopath-H/psyxml"
	psyLog "github.com/Psychopath-H/psyxml/logger"
	"github.com/gorilla/mux"
)

// trace 返回panic发生时的调用栈，跳过前3个Caller让日志简洁一点
func trace(message string) string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	var str strings.Builder
	str.WriteString(message + "\nTraceback:")
	for _, pc := range pcs[:n] {
		fn := runtime.FuncForPC(pc) //获取与函数指针pc相关的函数信息
		file, line := fn.FileLine(pc)
		str.WriteString(fmt.Sprintf("\n\t%s:%d", file, line))
	}
	return str.String()
}

// recovery 捕获handler里的panic，将堆栈信息打印在日志中，向用户返回Internal Server Error
func recovery(lg *psyLog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					message := fmt.Sprintf("%s", err)
					_ = lg.Error(trace(message))
					psyxml.WriteXML(w, http.StatusInternalServerError, psyxml.H{"error": "internal Server Error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
