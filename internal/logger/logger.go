package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// A Config holds the logger settings.
type Config struct {
	// Level is the minimum logged level (default: info).
	Level string
	// File is an optional rotated log file written in addition to stderr.
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// New returns a new well configured logger.
func New(cfg Config) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse log level")
		}
	}

	formatter := new(Formatter)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(formatter)
	log.SetLevel(level)

	if cfg.File != "" {
		log.Hooks.Add(&fileHook{
			rotate: &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    defaultInt(cfg.MaxSize, 20),
				MaxBackups: defaultInt(cfg.MaxBackups, 2),
				MaxAge:     defaultInt(cfg.MaxAge, 10),
			},
			formatter: formatter,
		})
	}

	return log, nil
}

// Discard returns a logger that writes nowhere.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func defaultInt(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}

////////////////////
//                //
// File hook      //
//                //
////////////////////

type fileHook struct {
	sync.Mutex
	rotate    io.Writer
	formatter logrus.Formatter
}

// Fire writes the formatted entry to the rotated file.
func (hook *fileHook) Fire(entry *logrus.Entry) error {
	hook.Lock()
	defer hook.Unlock()

	// use our formatter instead of entry.String()
	msg, err := hook.formatter.Format(entry)
	if err != nil {
		log.Println("failed to generate string for entry:", err)
		return err
	}

	_, err = hook.rotate.Write(msg)
	return err
}

// Levels returns configured log levels.
func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

////////////////////
//                //
// Log formatter  //
//                //
////////////////////

// A Formatter renders entries as `[time] LEVEL: message (key=value, ...)`.
type Formatter struct{}

// Format implements Logrus formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		fs := []string{}
		for k, v := range entry.Data {
			fs = append(fs, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fs)
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	t := entry.Time
	if t.IsZero() {
		t = time.Now()
	}

	data := fmt.Sprintf("[%s] %+5s: %s%s\n",
		t.Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(data), nil
}
