package calculation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Infof("year %d closed", 1)
	l.Warnf("cash negative\n")
	l.Errorf("boom")

	assert.Equal(t, "level=INFO msg=\"year 1 closed\"\nlevel=WARN msg=\"cash negative\"\nlevel=ERROR msg=boom\n", buf.String())

	buf.Reset()
	l.SetVerbose(true)
	l.Debugf("shown")
	assert.Equal(t, "level=DEBUG msg=shown\n", buf.String())
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
}
