package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitnessapi/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFileMaxSizeMB  = 50
	defaultLogFileMaxBackups = 30
	defaultLogFileMaxAgeDays = 365
	defaultSentrySampleRate  = 0.2
)

// FileRotation bounds the rotated log files. Zero values use the defaults.
type FileRotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type LoggerSetupParams struct {
	ServiceName string
	Environment string
	Version     string

	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	Rotation      FileRotation

	SentryEnabled          bool
	SentryDSN              string
	SentryTracesSampleRate float64
}

// Setup configures the standard logrus logger. Every entry gets the service,
// env and version fields, so json logs of the api and the maintenance jobs
// can be told apart.
func Setup(params LoggerSetupParams) error {
	return setup(logrus.StandardLogger(), params)
}

func setup(logger *logrus.Logger, params LoggerSetupParams) error {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}
	logger.SetLevel(GetLevel(params.LogLevel))
	logger.AddHook(newServiceFieldsHook(params.ServiceName, params.Environment, params.Version))

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			return err
		}
		logger.AddHook(NewSentryHook([]logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		}))
		logger.Infoln("sentry set up successfully")
	}

	logger.SetOutput(output(params))
	switch {
	case params.LogFileName == "":
		logger.Println("writing logs only to STDOUT")
	case params.LogToStdout:
		logger.Println("writing logs to file and STDOUT")
	}

	return nil
}

func setupSentry(params LoggerSetupParams) error {
	if params.SentryDSN == "" {
		return errors.New("sentry enabled, but dsn not set")
	}

	sampleRate := params.SentryTracesSampleRate
	if sampleRate <= 0 {
		sampleRate = defaultSentrySampleRate
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		Release:          params.Version,
		ServerName:       params.ServiceName,
		TracesSampleRate: sampleRate,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		return os.Stdout
	}

	fileLogger := newFileLogger(params.LogFileName, params.Rotation)
	if params.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

func newFileLogger(fileName string, rotation FileRotation) *lumberjack.Logger {
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	if rotation.MaxSizeMB <= 0 {
		rotation.MaxSizeMB = defaultLogFileMaxSizeMB
	}
	if rotation.MaxBackups <= 0 {
		rotation.MaxBackups = defaultLogFileMaxBackups
	}
	if rotation.MaxAgeDays <= 0 {
		rotation.MaxAgeDays = defaultLogFileMaxAgeDays
	}

	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		LocalTime:  false, // UTC
		Compress:   true,
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}

// serviceFieldsHook stamps static fields on every entry, unless the caller
// already set them.
type serviceFieldsHook struct {
	fields logrus.Fields
}

func newServiceFieldsHook(service, env, version string) *serviceFieldsHook {
	fields := logrus.Fields{}
	if service != "" {
		fields["service"] = service
	}
	if env != "" {
		fields["env"] = env
	}
	if version != "" {
		fields["version"] = version
	}
	return &serviceFieldsHook{fields: fields}
}

func (h *serviceFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceFieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
