package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"kilngas/config"
)

var initOnce sync.Once

// 访问日志（HTTP / WebSocket）
var accessLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
)

// InitLogger 初始化系统日志与访问日志，访问日志只初始化一次
func InitLogger(cfg config.LogConfig) error {
	if err := initSystemLogger(cfg); err != nil {
		return err
	}

	var err error
	initOnce.Do(func() {
		accessLogger, err = newJsonLogger(cfg, LogTypeAccess)
	})
	return err
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func initSystemLogger(cfg config.LogConfig) error {
	writer, err := getWriter(cfg.Dir, LogTypeSystem)
	if err != nil {
		return err
	}
	logrus.SetOutput(writer)

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	logrus.SetLevel(parseLevel(cfg.Level))
	return nil
}

func newJsonLogger(cfg config.LogConfig, logType string) (*logrus.Logger, error) {
	logger := logrus.New()
	writer, err := getWriter(cfg.Dir, logType)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(writer)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})
	logger.SetLevel(parseLevel(cfg.Level))
	return logger, nil
}

// 无法解析时使用 info
func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// 日志写 stderr，stdout 留给命令输出；配置了目录时同时写文件
func getWriter(dir, logType string) (io.Writer, error) {
	if dir == "" {
		return os.Stderr, nil
	}
	fileWriter, err := getFileWriter(dir, logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stderr, fileWriter), nil
}

func getFileWriter(dir, logType string) (io.Writer, error) {
	// 不同的日志类型分目录存储
	path := filepath.Join(dir, logType)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return &lumberjack.Logger{
		Filename: filepath.Join(path, logType+".log"),
		// megabytes
		MaxSize:    64,
		MaxBackups: 10,
		// days
		MaxAge:    14,
		LocalTime: true,
	}, nil
}
