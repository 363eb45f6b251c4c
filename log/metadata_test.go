package log

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitMetadata(t *testing.T) {
	attrs := []slog.Attr{
		NewMetadata("tag", "qtcoll"),
		slog.String("plain", "attr"),
		NewFixedMetadata("anon"),
	}

	meta, extra := SplitMetadata(attrs)
	assert.Len(t, meta, 2)
	assert.Len(t, extra, 1)
	assert.Equal(t, "tag", meta[0].Key)
	assert.Equal(t, "plain", extra[0].Key)
}

func TestLevelFormatters(t *testing.T) {
	assert.Equal(t, "INFO ", EqualLengthLevelFormatter(LevelInfo))
	assert.Equal(t, "WARN ", EqualLengthLevelFormatter(LevelWarn))
	assert.Equal(t, "DEBUG+1", EqualLengthLevelFormatter(LevelDebug+1))
	assert.Equal(t, "INFO", CommonLevelFormatter(LevelInfo))
}

func TestRFC3339TimeFormatter(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T12:00:00Z", RFC3339TimeFormatter(ts))
}

func TestAttrError(t *testing.T) {
	attr := AttrError(io.EOF)
	assert.Equal(t, KeyError, attr.Key)
	assert.Equal(t, "EOF", attr.Value.Resolve().String())

	assert.Panics(t, func() { AttrError(nil) })
}
