package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewProductionSkipsDebug(t *testing.T) {
	l, err := New("production")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDevelopmentEnablesDebug(t *testing.T) {
	for _, env := range []string{"development", "local", ""} {
		l, err := New(env)
		assert.NoError(t, err, env)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel), env)
	}
}

func TestNewUnknownEnvironment(t *testing.T) {
	_, err := New("staging-ish")
	assert.Error(t, err)
}
