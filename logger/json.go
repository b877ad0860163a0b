package logger

import (
	"encoding/json"
	"fmt"
	"time"
)

// JsonFormatter 以JSON形式输出日志
type JsonFormatter struct {
	TimeDisplay bool //是否显示时间
}

func (f *JsonFormatter) Format(param *LogFormatterParam) string {
	if param.LoggerFields == nil {
		param.LoggerFields = make(Fields)
	}
	if f.TimeDisplay {
		now := time.Now()
		param.LoggerFields["log_time"] = now.Format("2006/01/02 - 15:04:05")
	}
	param.LoggerFields["level"] = param.Level.Level()
	param.LoggerFields["msg"] = param.Msg
	marshal, err := json.Marshal(param.LoggerFields)
	if err != nil {
		return fmt.Sprintf("log format error: %v", err)
	}
	return string(marshal)
}
