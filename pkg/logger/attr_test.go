package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/deromanizer/pkg/logger"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("request_id", "abc"), logger.RequestID("abc"))
}

func TestInput(t *testing.T) {
	assert.Equal(t, slog.String("input", " xiv "), logger.Input(" xiv "))

	long := strings.Repeat("M", 100)
	attr := logger.Input(long)
	assert.Equal(t, strings.Repeat("M", 64)+"…", attr.Value.String())
}

func TestNumeral(t *testing.T) {
	attr := logger.Numeral("XIV", 14)
	assert.Equal(t, "numeral", attr.Key)

	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, slog.String("roman", "XIV"), group[0])
	assert.Equal(t, slog.Int("decimal", 14), group[1])
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, slog.String("code", "invalid_symbol"), logger.Code("invalid_symbol"))
	assert.Equal(t, slog.String("component", "prompt"), logger.Component("prompt"))
	assert.Equal(t, slog.String("mode", "serve"), logger.Mode("serve"))
}
