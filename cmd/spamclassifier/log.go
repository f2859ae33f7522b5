package main

import (
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(verbose, debug bool, logFile string) (*zap.SugaredLogger, error) {
	level := zap.WarnLevel
	if verbose {
		level = zap.InfoLevel
	}
	if debug {
		level = zap.DebugLevel
	}
	syncer := zapcore.AddSync(os.Stderr)
	if logFile != "" {
		rotationWriter, err := rotatelogs.New(
			logFile+".%Y%m%d%H",
			rotatelogs.WithLinkName(logFile),
			rotatelogs.WithRotationTime(time.Hour),
			rotatelogs.WithMaxAge(7*24*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", logFile)
		}
		syncer = zapcore.NewMultiWriteSyncer(syncer, zapcore.AddSync(rotationWriter))
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), syncer, level)
	return zap.New(core).Named("spamclassifier").Sugar(), nil
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.logger.Infof(format, a...)
}
