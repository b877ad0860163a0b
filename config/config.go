package config

import (
	"os"

	"github.com/BurntSushi/toml"
	psyLog "github.com/Psychopath-H/psyxml/logger"
)

var Conf = &PsyConfig{
	logger:  psyLog.Default(),
	Log:     make(map[string]any),
	Binding: make(map[string]any),
	Render:  make(map[string]any),
}

type PsyConfig struct {
	logger  *psyLog.Logger
	Log     map[string]any
	Binding map[string]any
	Render  map[string]any
}

func init() {
	loadToml()
}

// loadToml 进程启动时自动加载配置文件，可以用PSYXML_CONF环境变量指定位置
func loadToml() {
	confFile := os.Getenv("PSYXML_CONF")
	if confFile == "" {
		confFile = "conf/app.toml"
	}
	if _, err := os.Stat(confFile); err != nil {
		return //没有配置文件按默认值跑
	}
	if err := Load(confFile); err != nil {
		Conf.logger.Info("conf/app.toml decode fail check format")
	}
}

// Load 从file加载toml配置并合并进Conf
func Load(file string) error {
	_, err := toml.DecodeFile(file, Conf)
	return err
}
