package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		levelEnv  string
		wantInfo  bool
		wantDebug bool
	}{
		{name: "default is warn"},
		{name: "debug flag", debug: true, wantInfo: true, wantDebug: true},
		{name: "env info", levelEnv: "INFO", wantInfo: true},
		{name: "env error beats debug flag", debug: true, levelEnv: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&buf, tt.debug, tt.levelEnv)

			log.Debug("debug line")
			log.Info("info line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}

func TestNewLoggerDropsTimeOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false, "").Warn("careful")
	assert.NotContains(t, buf.String(), "time=")
	assert.Contains(t, buf.String(), "msg=careful")

	buf.Reset()
	newLogger(&buf, true, "").Warn("careful")
	assert.Contains(t, buf.String(), "time=")
	assert.Contains(t, buf.String(), "source=logging/logger_test.go")
}
