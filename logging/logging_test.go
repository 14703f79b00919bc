package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("ParsesLevel", func(t *testing.T) {
		log := New("debug")
		assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		log := New("chatty")
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("EmptyLevelDefaultsToInfo", func(t *testing.T) {
		log := New("")
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})
}
