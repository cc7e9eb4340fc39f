package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2020, 1, 15, 10, 0, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "catalog unreachable",
		Data: logrus.Fields{
			"service": "item-catalog-service",
			"attempt": 1,
		},
	}

	data, err := new(Formatter).Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "[2020-01-15T10:00:00Z] WARNING: catalog unreachable (attempt=1, service=item-catalog-service)\n", string(data))
}

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "debug"})
	assert.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log, err = New(Config{})
	assert.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	_, err = New(Config{Level: "verbose"})
	assert.Error(t, err)
}

func TestFileHook(t *testing.T) {
	var buf bytes.Buffer
	log := Discard()
	log.Hooks.Add(&fileHook{rotate: &buf, formatter: new(Formatter)})

	log.Info("seeded")
	assert.Contains(t, buf.String(), " INFO: seeded\n")
}
