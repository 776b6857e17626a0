package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// The console encoder must never silently discard fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "rnokpp.generate",
		Message:    "Generated identifier",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldSSN, "30******34"), "ssn=30******34"},
		{zap.String(FieldDOB, "1982-07-06"), "dob=1982-07-06"},
		{zap.Bool(FieldValid, true), "is_valid=true"},
		{zap.Int(FieldSeed, 42), "seed=42"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
	}

	fields := make([]zapcore.Field, 0, len(testFields))
	for _, tf := range testFields {
		fields = append(fields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	for _, tf := range testFields {
		assert.Contains(t, out, tf.mustFind)
	}
}

func TestMinimalEncoderLayout(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "rnokpp.generate",
		Message:    "Age window ignored",
	}

	buf, err := encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)

	assert.Equal(t, "13:04:35  WARN  r.generate  Age window ignored\n", stripANSI(buf.String()))
}

func TestMinimalEncoderInfoHasNoLevel(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		Message: "Loaded config",
	}

	buf, err := encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)

	assert.Equal(t, "09:00:00  Loaded config\n", stripANSI(buf.String()))
}

func TestMinimalEncoderContextFields(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(newMinimalEncoder(), zapcore.AddSync(&buf), zapcore.DebugLevel)
	log := zap.New(core).Sugar().With(FieldTool, "rnokpp_generate")

	log.Infow("Tool called", FieldSex, "Female")

	out := stripANSI(buf.String())
	assert.Contains(t, out, "tool=rnokpp_generate")
	assert.Contains(t, out, "sex=Female")
}

func TestAbbreviateName(t *testing.T) {
	tests := map[string]string{
		"rnokpp.generate": "r.generate",
		"am.load":         "a.load",
		"mcp":             "mcp",
		"a.b.c":           "a.b.c",
	}
	for in, want := range tests {
		assert.Equal(t, want, abbreviateName(in))
	}
}

func TestFormatFieldsSorted(t *testing.T) {
	out := stripANSI(formatFields([]zapcore.Field{
		zap.String("b", "2"),
		zap.String("a", "1"),
	}))
	assert.True(t, strings.Index(out, "a=1") < strings.Index(out, "b=2"))
}
