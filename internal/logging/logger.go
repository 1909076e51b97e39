package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/2beens/liftstats/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	// LogFileName is the base path of the log file, a date suffix is added to it.
	// Empty means log only to stdout.
	LogFileName      string
	LogToStdout      bool
	Console          io.Writer // used instead of stdout when set
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the standard logrus logger and returns a func that
// flushes and closes whatever Setup opened.
func Setup(params LoggerSetupParams) func() {
	return setup(logrus.StandardLogger(), params)
}

func setup(logger *logrus.Logger, params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	closers := make([]func(), 0, 2)
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment: params.Environment,
			Dsn:         params.SentryDSN,
			ServerName:  params.SentryServerName,
		})
		if err != nil {
			logger.Errorf("sentry.Init: %s", err)
		} else {
			logger.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			closers = append(closers, func() {
				sentry.Flush(2 * time.Second)
			})
			logger.Infoln("sentry set up successfully")
		}
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	console := params.Console
	if console == nil {
		console = os.Stdout
	}

	if params.LogFileName == "" {
		logger.SetOutput(console)
		logger.Debugln("writing logs only to STDOUT")
		return closeAll(closers)
	}

	fileWriter := NewDailyFileWriter(params.LogFileName)
	closers = append(closers, func() {
		if err := fileWriter.Close(); err != nil {
			logrus.Errorf("close log file: %s", err)
		}
	})

	if params.LogToStdout {
		logger.SetOutput(pkg.NewCombinedWriter(console, fileWriter))
		logger.Debugln("writing logs to file and STDOUT")
	} else {
		logger.SetOutput(fileWriter)
	}

	return closeAll(closers)
}

func closeAll(closers []func()) func() {
	return func() {
		for _, c := range closers {
			c()
		}
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
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// DailyFileWriter writes to <base>-YYYYMMDD.log, switching to a new file when
// the (UTC) day changes. Within a day, lumberjack rotates by size.
type DailyFileWriter struct {
	base    string
	now     func() time.Time
	day     string
	current *lumberjack.Logger
	mutex   sync.Mutex
}

var _ io.WriteCloser = (*DailyFileWriter)(nil)

func NewDailyFileWriter(base string) *DailyFileWriter {
	return &DailyFileWriter{
		base: strings.TrimSuffix(base, ".log"),
		now:  time.Now,
	}
}

// FileNameForDay returns the log file path used for the given day.
func (w *DailyFileWriter) FileNameForDay(t time.Time) string {
	return w.base + "-" + t.UTC().Format("20060102") + ".log"
}

func (w *DailyFileWriter) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	now := w.now()
	day := now.UTC().Format("20060102")
	if w.current == nil || day != w.day {
		if w.current != nil {
			if err := w.current.Close(); err != nil {
				return 0, err
			}
		}
		filename := w.FileNameForDay(now)
		if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
			return 0, err
		}
		w.current = &lumberjack.Logger{
			Filename:  filename,
			MaxSize:   50, // megabytes
			LocalTime: false,
			Compress:  true,
		}
		w.day = day
	}

	return w.current.Write(p)
}

func (w *DailyFileWriter) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.current == nil {
		return nil
	}
	err := w.current.Close()
	w.current = nil
	return err
}
