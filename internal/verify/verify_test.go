package verify

import (
	"strings"
	"testing"

	. "github.com/cricklet/shogigo/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	err := Run()
	assert.True(t, IsNil(err), err.Error())
}

func TestEachCheck(t *testing.T) {
	for _, check := range Checks {
		err := check.Run()
		assert.True(t, IsNil(err), check.Name+"\n"+err.Error())
	}
}

func TestRunReports(t *testing.T) {
	lines := []string{}
	added := 0
	closed := false

	progress := ProgressBar{
		Set:   func(int) {},
		Add:   func(i int) { added += i },
		Close: func() { closed = true },
	}
	err := Run(
		WithLogger(FuncLogger(func(s string) {
			lines = append(lines, s)
		})),
		WithProgress(progress),
	)

	assert.True(t, IsNil(err))
	assert.Equal(t, len(Checks), added)
	assert.True(t, closed)
	assert.Equal(t, len(Checks), len(lines))
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, Checks[i].Name+": ok"), line)
	}
}
