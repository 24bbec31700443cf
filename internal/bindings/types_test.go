package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchLogWithoutSink(t *testing.T) {
	setSink(nil)
	// Must not panic when the engine logs before a sink is installed.
	dispatchLog(LogWarn, "ignored")
}

func TestDispatchLogForwardsToSink(t *testing.T) {
	type record struct {
		level int
		msg   string
	}
	var got []record
	setSink(func(level int, message string) {
		got = append(got, record{level, message})
	})
	t.Cleanup(func() { setSink(nil) })

	dispatchLog(LogError, "cannot resolve table 'xx.tbl'")
	dispatchLog(LogDebug, "found table")

	require.Len(t, got, 2)
	assert.Equal(t, LogError, got[0].level)
	assert.Equal(t, "cannot resolve table 'xx.tbl'", got[0].msg)
	assert.Equal(t, LogDebug, got[1].level)
}

func TestSetSinkNilClears(t *testing.T) {
	called := false
	setSink(func(int, string) { called = true })
	setSink(nil)
	dispatchLog(LogInfo, "dropped")
	assert.False(t, called)
}

func TestLevelOrdering(t *testing.T) {
	levels := []int{LogAll, LogDebug, LogInfo, LogWarn, LogError, LogFatal, LogOff}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, LogInfo, LogDefault)
}
