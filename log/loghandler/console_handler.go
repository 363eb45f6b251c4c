package loghandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/qtraffics/qtcoll/ex"
	"github.com/qtraffics/qtcoll/log"
	"github.com/qtraffics/qtcoll/maplib"
	"github.com/qtraffics/qtcoll/slicelib"
	"github.com/qtraffics/qtcoll/sys/sysvars"
	"github.com/qtraffics/qtcoll/values"
)

var DefaultConsoleHandler log.Handler = NewConsoleHandler(os.Stderr,
	ConsoleHandlerOption{EnableTime: true, SourceLevel: log.LevelError, Level: log.LevelDebug, LevelFormatter: log.ColorLevelFormatter}).
	WithAttrs([]slog.Attr{log.NewFixedMetadata("Default")})

const (
	space = ' '
	dot   = '.'
)

var _ log.Handler = (*ConsoleHandler)(nil)

type ConsoleHandler struct {
	level, sourceLevel log.Level
	enableTime         bool
	timeFormat         func(t time.Time) string
	levelFormat        func(l log.Level) string

	writer io.Writer
	// guards writer; shared by every clone of this handler.
	access *sync.Mutex

	// internal elements
	groupPrefix     string
	preFormatedAttr []byte
	metadata        []slog.Attr
}

type ConsoleHandlerOption struct {
	Level       log.Level
	SourceLevel log.Level
	EnableTime  bool

	TimeFormatter  func(t time.Time) string
	LevelFormatter func(level log.Level) string
}

func NewConsoleHandler(w io.Writer, option ConsoleHandlerOption) log.Handler {
	if w == nil || w == io.Discard {
		return slog.NewTextHandler(io.Discard, nil)
	}
	option.TimeFormatter = values.UseDefaultNil(option.TimeFormatter, log.RFC3339TimeFormatter)
	option.LevelFormatter = values.UseDefaultNil(option.LevelFormatter, log.EqualLengthLevelFormatter)

	return &ConsoleHandler{
		writer:      w,
		access:      new(sync.Mutex),
		level:       option.Level,
		sourceLevel: option.SourceLevel,
		enableTime:  option.EnableTime,
		timeFormat:  option.TimeFormatter,
		levelFormat: option.LevelFormatter,
	}
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	return &ConsoleHandler{
		level:       h.level,
		sourceLevel: h.sourceLevel,
		enableTime:  h.enableTime,
		timeFormat:  h.timeFormat,
		levelFormat: h.levelFormat,

		writer: h.writer,
		access: h.access,

		groupPrefix:     h.groupPrefix,
		preFormatedAttr: slices.Clone(h.preFormatedAttr),
		metadata:        slices.Clone(h.metadata),
	}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.level <= level
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	buffer := new(bytes.Buffer)

	if h.enableTime {
		if r.Time.IsZero() {
			r.Time = time.Now()
		}
		buffer.WriteString(h.timeFormat(r.Time))
		buffer.WriteByte(space)
	}

	buffer.WriteString(h.levelFormat(r.Level))

	for _, m := range h.metadata {
		buffer.WriteByte(space)
		writeMeta(buffer, m)
	}

	buffer.WriteByte(space)
	buffer.WriteString(r.Message)

	if len(h.preFormatedAttr) != 0 {
		buffer.WriteByte(space)
		buffer.Write(h.preFormatedAttr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(buffer, h.groupPrefix, attr, h.timeFormat)
		return true
	})

	buffer.WriteByte('\n')

	if r.Level >= h.sourceLevel {
		if source := recordSource(r); source != nil {
			if sysvars.DebugEnabled {
				fmt.Fprintf(buffer, "Caller: %s:%d %s \n", source.File, source.Line, source.Function)
			} else {
				fmt.Fprintf(buffer, "Caller: %s \n", source.Function)
			}
		}
	}

	h.access.Lock()
	defer h.access.Unlock()
	if _, err := h.writer.Write(buffer.Bytes()); err != nil {
		return ex.Cause(err, "write record")
	}
	return nil
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	metadata, extraAttr := log.SplitMetadata(attrs)
	h2 := h.clone()
	if len(metadata) != 0 {
		h2.withMetadata(metadata)
	}
	if len(extraAttr) != 0 {
		h2.withAttrs(extraAttr)
	}

	return h2
}

func (h *ConsoleHandler) withMetadata(attrs []slog.Attr) {
	attrs = slicelib.UniqByLast(attrs, func(it slog.Attr) string {
		return it.Key
	})

	if len(h.metadata) == 0 {
		h.metadata = attrs
		return
	}

	indexes := maplib.IndexMap(slicelib.Map(h.metadata, func(it slog.Attr) string {
		return it.Key
	}))

	for i := 0; i < len(attrs); i++ {
		attr := attrs[i]
		if old, ok := indexes[attr.Key]; ok && old < len(h.metadata) {
			h.metadata[old] = attr
		} else {
			h.metadata = append(h.metadata, attr)
		}
	}
}

func (h *ConsoleHandler) withAttrs(attrs []slog.Attr) {
	var attrBytes [][]byte
	if len(h.preFormatedAttr) != 0 {
		attrBytes = append(attrBytes, h.preFormatedAttr)
	}

	for i := 0; i < len(attrs); i++ {
		attr := attrs[i]
		if len(h.groupPrefix) != 0 {
			attr.Key = h.groupPrefix + string(dot) + attr.Key
		}
		attrBytes = append(attrBytes, []byte(attr.String()))
	}
	if len(attrBytes) != 0 {
		h.preFormatedAttr = bytes.Join(attrBytes, []byte{space})
	}
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	if len(h2.groupPrefix) == 0 {
		h2.groupPrefix = name
	} else {
		h2.groupPrefix = h2.groupPrefix + string(dot) + name
	}
	return h2
}

func writeAttr(buffer *bytes.Buffer, group string, attr slog.Attr, timeFormat func(t time.Time) string) {
	if attr.Key == "" {
		attr.Key = "!BADKEY"
	}

	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		for _, v := range value.Group() {
			v.Key = attr.Key + string(dot) + v.Key // apply the old key
			writeAttr(buffer, group, v, timeFormat)
		}
		return
	}

	buffer.WriteByte(space)
	if len(group) != 0 {
		buffer.WriteString(group)
		buffer.WriteByte(dot)
	}

	var valueStr string
	if value.Kind() == slog.KindTime && timeFormat != nil {
		valueStr = timeFormat(value.Time())
	} else {
		valueStr = value.String()
	}
	if strings.Contains(valueStr, " ") {
		valueStr = "`" + valueStr + "`"
	}
	buffer.WriteString(attr.Key + "=" + valueStr)
}

func writeMeta(buffer *bytes.Buffer, meta slog.Attr) {
	value := meta.Value.Resolve()

	if value.Kind() == slog.KindGroup {
		buffer.WriteString("[" + strings.Join(groupValues(value), " ") + "]")
		return
	}

	str := value.String()
	if len(str) == 0 {
		str = "!EMPTY"
	}
	buffer.WriteString("[" + str + "]")
}

func groupValues(value slog.Value) []string {
	value = value.Resolve()
	if value.Kind() != slog.KindGroup {
		return []string{value.String()}
	}

	var groupValue []string
	for _, v := range value.Group() {
		groupValue = append(groupValue, groupValues(v.Value)...)
	}
	return groupValue
}

func recordSource(r slog.Record) *slog.Source {
	if r.PC == 0 {
		return nil
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	return &slog.Source{
		Function: frame.Function,
		File:     frame.File,
		Line:     frame.Line,
	}
}
