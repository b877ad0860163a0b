package logger

import (
	"fmt"
	"strings"
	"time"
)

// TextFormatter 以纯文本形式输出日志
type TextFormatter struct {
}

func (f *TextFormatter) Format(param *LogFormatterParam) string {
	now := time.Now()
	var b strings.Builder
	if param.IsOutputColor {
		//要带颜色 error的颜色为红色 info为绿色 debug为蓝色
		levelColor := f.LevelColor(param.Level)
		msgColor := f.MsgColor(param.Level)
		fmt.Fprintf(&b, "%s [psyxml] %s %s%v%s | level= %s %s %s | msg=%s %#v %s",
			yellow, reset, blue, now.Format("2006/01/02 - 15:04:05"), reset,
			levelColor, param.Level.Level(), reset, msgColor, param.Msg, reset,
		)
	} else {
		fmt.Fprintf(&b, "[psyxml] %v | level=%s | msg=%#v",
			now.Format("2006/01/02 - 15:04:05"),
			param.Level.Level(), param.Msg,
		)
	}
	if len(param.LoggerFields) > 0 {
		fmt.Fprintf(&b, " | fields=%v", param.LoggerFields)
	}
	return b.String()
}

func (f *TextFormatter) LevelColor(level LoggerLevel) string {
	switch level {
	case LevelDebug:
		return blue
	case LevelInfo:
		return green
	case LevelError:
		return red
	default:
		return cyan
	}
}

func (f *TextFormatter) MsgColor(level LoggerLevel) string {
	if level == LevelError {
		return red
	}
	return ""
}
