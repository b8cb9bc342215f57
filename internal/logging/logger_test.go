package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/2beens/fitnessapi/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	testCases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"ERROR":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"Info":    logrus.InfoLevel,
		"trace":   logrus.TraceLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"":        logrus.TraceLevel,
		"unknown": logrus.TraceLevel,
	}
	for level, expected := range testCases {
		assert.Equal(t, expected, GetLevel(level), level)
	}
}

func TestSentryHook(t *testing.T) {
	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	entry := logrus.NewEntry(logrus.StandardLogger()).
		WithError(errors.New("boom")).
		WithField("user_id", 7)
	entry.Level = logrus.ErrorLevel
	entry.Message = "create workout"

	// no client bound to the hub, so the event is dropped
	assert.NoError(t, hook.Fire(entry))
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(logrus.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}

func TestSetup_JSONWithServiceFields(t *testing.T) {
	logger := logrus.New()
	require.NoError(t, setup(logger, LoggerSetupParams{
		ServiceName:   "fitness-api",
		Environment:   "production",
		Version:       "abc123",
		LogLevel:      "info",
		LogFormatJSON: true,
	}))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Equal(t, os.Stdout, logger.Out)

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Debug("dropped")
	logger.WithField("env", "overridden").Info("workout created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "workout created", line["msg"])
	assert.Equal(t, "fitness-api", line["service"])
	assert.Equal(t, "overridden", line["env"])
	assert.Equal(t, "abc123", line["version"])
}

func TestSetup_SentryWithoutDSN(t *testing.T) {
	err := setup(logrus.New(), LoggerSetupParams{SentryEnabled: true})
	assert.EqualError(t, err, "sentry enabled, but dsn not set")
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, output(LoggerSetupParams{}))

	fileName := filepath.Join(t.TempDir(), "api")
	fileOnly := output(LoggerSetupParams{LogFileName: fileName})
	require.IsType(t, &lumberjack.Logger{}, fileOnly)
	assert.Equal(t, fileName+".log", fileOnly.(*lumberjack.Logger).Filename)

	combined := output(LoggerSetupParams{LogFileName: fileName, LogToStdout: true})
	assert.IsType(t, &pkg.CombinedWriter{}, combined)
}

func TestNewFileLogger_Rotation(t *testing.T) {
	defaults := newFileLogger("/var/log/fitness/api.log", FileRotation{})
	assert.Equal(t, "/var/log/fitness/api.log", defaults.Filename)
	assert.Equal(t, defaultLogFileMaxSizeMB, defaults.MaxSize)
	assert.Equal(t, defaultLogFileMaxBackups, defaults.MaxBackups)
	assert.Equal(t, defaultLogFileMaxAgeDays, defaults.MaxAge)
	assert.True(t, defaults.Compress)

	custom := newFileLogger("api", FileRotation{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7})
	assert.Equal(t, "api.log", custom.Filename)
	assert.Equal(t, 10, custom.MaxSize)
	assert.Equal(t, 3, custom.MaxBackups)
	assert.Equal(t, 7, custom.MaxAge)
}

func TestServiceFieldsHook_SkipsEmpty(t *testing.T) {
	hook := newServiceFieldsHook("fitness-maintenance", "", "")
	assert.Equal(t, logrus.AllLevels, hook.Levels())

	entry := logrus.NewEntry(logrus.New())
	require.NoError(t, hook.Fire(entry))
	assert.Equal(t, logrus.Fields{"service": "fitness-maintenance"}, entry.Data)
}
