package progress_test

import (
	"testing"

	"github.com/katalvlaran/roundelim/progress"
	"github.com/stretchr/testify/require"
)

func TestNullHandlerDiscards(t *testing.T) {
	require.NotPanics(t, func() {
		progress.Null().Notify("phase", 1, 10)
	})
}

func TestFuncHandlerInvokesFunc(t *testing.T) {
	var calls []string
	h := progress.FuncHandler(func(phase string, current, total int) {
		calls = append(calls, phase)
	})
	h.Notify("maximize", 1, 2)
	h.Notify("diagram", 2, 2)
	require.Equal(t, []string{"maximize", "diagram"}, calls)
}

func TestNotifyToleratesNilHandler(t *testing.T) {
	require.NotPanics(t, func() {
		progress.Notify(nil, "phase", 0, 0)
	})
}
