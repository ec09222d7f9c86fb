package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newZapEncoderConfig() zapcore.EncoderConfig {
	result := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	return result
}

func getZapEncoding(f *os.File) string {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "console"
	}

	return "json"
}

func createLoggerEncoder(eName string, encoderConfig zapcore.EncoderConfig) (zapcore.Encoder, error) {
	if eName == "auto" {
		eName = getZapEncoding(os.Stderr)
	}

	switch eName {
	case "console":
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("unknown encoder: %s", eName)
	}
}

func createLogger(encName string, level int, output zapcore.WriteSyncer) (*zap.Logger, error) {
	enc, err := createLoggerEncoder(encName, newZapEncoderConfig())
	if err != nil {
		return nil, err
	}

	atomicLevel := zap.NewAtomicLevelAt(zapcore.Level(level))

	return zap.New(zapcore.NewCore(enc, output, atomicLevel)), nil
}
