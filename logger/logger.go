package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"
)

const (
	greenBg   = "\033[97;42m"
	whiteBg   = "\033[90;47m"
	yellowBg  = "\033[90;43m"
	redBg     = "\033[97;41m"
	blueBg    = "\033[97;44m"
	magentaBg = "\033[97;45m"
	cyanBg    = "\033[97;46m"
	green     = "\033[32m"
	white     = "\033[37m"
	yellow    = "\033[33m"
	red       = "\033[31m"
	blue      = "\033[34m"
	magenta   = "\033[35m"
	cyan      = "\033[36m"
	reset     = "\033[0m"
)

type LoggerLevel int

const (
	LevelDebug LoggerLevel = iota
	LevelInfo
	LevelError
)

// LevelAny 级别的LogWriter对任何级别的日志都进行输出
const LevelAny LoggerLevel = -1

// LogFormatter 实现了这个接口可以以自己的形式输出日志
type LogFormatter interface {
	Format(param *LogFormatterParam) string
}

type LogFormatterParam struct {
	Level         LoggerLevel
	IsOutputColor bool
	LoggerFields  Fields
	Msg           any
}

// LogWriter 将特定级别的日志写到一个io.Writer里
type LogWriter struct {
	level  LoggerLevel
	writer io.Writer
}

type Fields map[string]any

// Logger 是库以及库的使用者用来记录调试信息的日志工具
type Logger struct {
	Formatter    LogFormatter //格式化输出函数
	Level        LoggerLevel  //日志工具等级，低于该等级的日志不会输出
	LogWriters   []*LogWriter //日志打印器
	LoggerFields Fields       //日志中附带的字段
	LogPath      string       //日志存放的路径
	LogFileSize  int64        //单个日志文件的大小上限，超过后切换到新文件
}

// New 返回一个空Logger
func New() *Logger {
	return &Logger{}
}

// Default 返回默认的Logger：Debug级别，JSON格式，控制台输出
func Default() *Logger {
	l := New()
	l.Level = LevelDebug
	l.LogWriters = append(l.LogWriters, &LogWriter{
		level:  LevelDebug,
		writer: os.Stdout,
	})
	l.Formatter = &JsonFormatter{TimeDisplay: true}
	return l
}

// SetLogPath 设置日志文件的存储目录
func (l *Logger) SetLogPath(logPath string) {
	l.LogPath = logPath
}

// SetLogWriter 注册输出流，不传writer时使用LogPath下的default.log文件
func (l *Logger) SetLogWriter(level LoggerLevel, writer ...io.Writer) error {
	if writer == nil {
		if l.LogPath == "" {
			return errors.New("LogPath should be set first")
		}
		l.LogWriters = append(l.LogWriters, &LogWriter{
			level:  level,
			writer: FileWriter(path.Join(l.LogPath, "default.log")),
		})
		return nil
	}
	for _, w := range writer {
		l.LogWriters = append(l.LogWriters, &LogWriter{
			level:  level,
			writer: w,
		})
	}
	return nil
}

// SetLogWriterOnFile 将level级别的日志输出到logPath下的fileName文件里
func (l *Logger) SetLogWriterOnFile(logPath string, fileName string, level LoggerLevel) {
	l.SetLogPath(logPath)
	l.LogWriters = append(l.LogWriters, &LogWriter{
		level:  level,
		writer: FileWriter(path.Join(l.LogPath, fileName)),
	})
}

// WithFields 给Logger附加字段，之后的每条日志都会带上这些字段
func (l *Logger) WithFields(fields Fields) *Logger {
	l.LoggerFields = fields
	return l
}

// Print 根据当前Logger级别选择是否打印日志
func (l *Logger) Print(level LoggerLevel, msg any) error {
	if l.Level > level { //准入条件，不满足这个条件，根本不会进入日志系统
		return errors.New("loglevel is too low")
	}
	param := &LogFormatterParam{
		Level:        level,
		LoggerFields: l.LoggerFields,
		Msg:          msg,
	}
	var err error
	str := l.Formatter.Format(param)
	for _, lw := range l.LogWriters {
		if lw.writer == os.Stdout { //控制台输出带颜色，且不做级别过滤
			param.IsOutputColor = true
			str = l.Formatter.Format(param)
			_, _ = fmt.Fprintln(lw.writer, str)
			param.IsOutputColor = false
			str = l.Formatter.Format(param)
			continue
		}
		if lw.level == LevelAny || level == lw.level {
			_, err = fmt.Fprintln(lw.writer, str)
			l.checkFileSize(lw)
		}
	}
	return err
}

func (l *Logger) Debug(msg any) error {
	return l.Print(LevelDebug, msg)
}

func (l *Logger) Info(msg any) error {
	return l.Print(LevelInfo, msg)
}

func (l *Logger) Error(msg any) error {
	return l.Print(LevelError, msg)
}

// checkFileSize 文件超过大小上限后换一个带时间戳的新文件继续写
func (l *Logger) checkFileSize(w *LogWriter) {
	logFile, ok := w.writer.(*os.File)
	if !ok || logFile == nil {
		return
	}
	stat, err := logFile.Stat()
	if err != nil {
		return
	}
	if l.LogFileSize <= 0 {
		l.LogFileSize = 100 << 20 //100M
	}
	if stat.Size() < l.LogFileSize {
		return
	}
	_, name := path.Split(stat.Name())
	if idx := strings.Index(name, "."); idx > 0 {
		name = name[:idx]
	}
	next := fmt.Sprintf("%s.%d.log", name, time.Now().UnixMilli())
	w.writer = FileWriter(path.Join(l.LogPath, next)) //换个新的io.Writer流
}

// FileWriter 返回一个追加写的文件输出流
func FileWriter(name string) io.Writer {
	w, _ := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	return w
}

func (level LoggerLevel) Level() string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return ""
	}
}
