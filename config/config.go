package config

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"kilngas/thermo"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Thermo ThermoConfig
	Sweep  SweepConfig
}

type ServerConfig struct {
	Addr string
	// gin 运行模式 debug / release / test
	Mode string
}

type LogConfig struct {
	Level string
	// 为空时只输出到 stdout
	Dir string
}

type ThermoConfig struct {
	GasConstant float64
	// 额外物种表（TOML），为空则只用内置物种
	SpeciesFile string
}

type SweepConfig struct {
	Points  int
	Workers int
}

func Default() *Config {
	return loadCfg(ini.Empty())
}

// Load 读取 ini 配置文件，文件不存在时使用默认值
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
		return Default(), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "配置文件读取错误，请检查文件路径: %s", path)
	}
	cfg := loadCfg(file)
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

func loadCfg(file *ini.File) *Config {
	return &Config{
		Server: ServerConfig{
			Addr: file.Section("server").Key("addr").MustString(":9000"),
			Mode: file.Section("server").Key("mode").In("release", []string{"debug", "release", "test"}),
		},
		Log: LogConfig{
			Level: file.Section("log").Key("level").MustString("info"),
			Dir:   file.Section("log").Key("dir").String(),
		},
		Thermo: ThermoConfig{
			GasConstant: file.Section("thermo").Key("gas_constant").MustFloat64(thermo.DefaultGasConstant),
			SpeciesFile: file.Section("thermo").Key("species_file").String(),
		},
		Sweep: SweepConfig{
			Points:  file.Section("sweep").Key("points").MustInt(50),
			Workers: file.Section("sweep").Key("workers").MustInt(0),
		},
	}
}

func (c *Config) Validate() error {
	if !(c.Thermo.GasConstant > 0) {
		return errors.Errorf("gas_constant must be positive, got %g", c.Thermo.GasConstant)
	}
	if c.Sweep.Points < 1 {
		return errors.Errorf("sweep points must be at least 1, got %d", c.Sweep.Points)
	}
	if c.Sweep.Workers < 0 {
		return errors.Errorf("sweep workers must not be negative, got %d", c.Sweep.Workers)
	}
	return nil
}

func (c *Config) Constants() thermo.Constants {
	return thermo.Constants{GasConstant: c.Thermo.GasConstant}
}
