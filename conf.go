package psyxml

import (
	"errors"

	"github.com/Psychopath-H/psyxml/config"
	"github.com/Psychopath-H/psyxml/logger"
)

// SetLogPathWithConf 通过配置设置调试日志的存储位置
// conf/app.toml中写 [Log] path = "./log"
func SetLogPathWithConf() error {
	logPath, ok := config.Conf.Log["path"]
	if !ok {
		return errors.New("config log.path not exist")
	}
	path, ok := logPath.(string)
	if !ok {
		return errors.New("config log.path should be a string")
	}
	DebugLogger.SetLogPath(path)
	return DebugLogger.SetLogWriter(logger.LevelAny)
}

// SetMaxBodyBytesWithConf 通过配置设置请求体大小上限
// conf/app.toml中写 [Binding] maxBodyBytes = 4194304
func SetMaxBodyBytesWithConf() error {
	n, ok := config.Conf.Binding["maxBodyBytes"]
	if !ok {
		return errors.New("config binding.maxBodyBytes not exist")
	}
	v, ok := n.(int64)
	if !ok {
		return errors.New("config binding.maxBodyBytes should be an integer")
	}
	SetMaxBodyBytes(v)
	return nil
}

// SetRenderIndentWithConf 通过配置设置XML响应的缩进
// conf/app.toml中写 [Render] indent = "  "
func SetRenderIndentWithConf() error {
	indent, ok := config.Conf.Render["indent"]
	if !ok {
		return errors.New("config render.indent not exist")
	}
	s, ok := indent.(string)
	if !ok {
		return errors.New("config render.indent should be a string")
	}
	RenderIndent = s
	return nil
}
