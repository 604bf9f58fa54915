package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"aniboard/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(logType TypeEnum, format string, args ...interface{})
	Warnf(logType TypeEnum, format string, args ...interface{})
	Debugf(logType TypeEnum, format string, args ...interface{})
	Infof(logType TypeEnum, format string, args ...interface{})
	Fatalf(logType TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]*zerolog.Logger
	files   []*os.File
}

var logFileNames = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "access_get.log",
	TypePost: "access_post.log",
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", conf.Logger.Level, err)
	}

	lp := &LogProvider{
		loggers: make(map[TypeEnum]*zerolog.Logger),
	}

	for logType, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			lp.Close()
			return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
		}
		lp.files = append(lp.files, file)
		logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
		lp.loggers[logType] = &logger
	}

	return lp, nil
}

func (lp *LogProvider) logger(logType TypeEnum) *zerolog.Logger {
	if l, ok := lp.loggers[logType]; ok {
		return l
	}
	return lp.loggers[TypeApp]
}

func (lp *LogProvider) Errorf(logType TypeEnum, format string, args ...interface{}) {
	lp.logger(logType).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(logType TypeEnum, format string, args ...interface{}) {
	lp.logger(logType).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(logType TypeEnum, format string, args ...interface{}) {
	lp.logger(logType).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(logType TypeEnum, format string, args ...interface{}) {
	lp.logger(logType).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(logType TypeEnum, format string, args ...interface{}) {
	lp.logger(logType).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}
