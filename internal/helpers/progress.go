package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

var SilentProgressBar = ProgressBar{
	func(int) {}, func(int) {}, func() {},
}

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if !IsNil(err) {
		return 80
	}
	return MaxInt(80, MinInt(120, width))
}

func unitForDuration(d time.Duration) time.Duration {
	if d < time.Microsecond {
		return time.Nanosecond
	}
	if d < time.Millisecond {
		return time.Microsecond
	}
	if d < time.Second {
		return time.Millisecond
	}
	if d < time.Minute {
		return time.Second
	}
	return time.Minute
}

// CreateProgressBar draws an animated bar on interactive terminals and falls
// back to periodic plain lines otherwise (pipes, CI logs).
func CreateProgressBar(total int, label string) ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		p := progressbar.Default(int64(total), label)
		return ProgressBar{
			func(i int) {
				_ = p.Set(i)
			}, func(i int) {
				_ = p.Add(i)
			}, func() {
				_ = p.Finish()
			},
		}
	}
	return createLineProgressBar(os.Stdout, termWidth(), total, label)
}

func createLineProgressBar(out io.Writer, width int, total int, label string) ProgressBar {
	value := int32(0)

	startTime := time.Now()
	updateDuration := time.Millisecond * 200
	lock := sync.Mutex{}

	var update = func(forceUpdate bool) {
		lock.Lock()
		defer lock.Unlock()

		if time.Since(startTime) <= updateDuration && !forceUpdate {
			return
		}
		updateDuration *= 2

		current := atomic.LoadInt32(&value)
		if current > int32(total) {
			current = int32(total)
		} else if current == 0 {
			return
		}

		elapsed := time.Since(startTime)
		perSecond := int(float64(current) / elapsed.Seconds())

		percent := float64(current) / float64(total)
		percentStr := fmt.Sprintf("%3d", int(percent*100))
		expectedFinish := time.Duration(float64(elapsed) / percent)
		unit := unitForDuration(elapsed)

		prefix := fmt.Sprintf("%s %s%% ", label, percentStr)
		suffix := fmt.Sprintf(" %v => %v @ %v/s", elapsed.Round(unit), expectedFinish.Round(unit), humanize.Comma(int64(perSecond)))

		textLen := utf8.RuneCountInString(prefix) + utf8.RuneCountInString(suffix)
		totalProgressLen := MaxInt(width-textLen, 0)
		currentProgressLen := MinInt(MaxInt(int(float64(totalProgressLen)*percent), 0), totalProgressLen)
		remainingProgressLen := totalProgressLen - currentProgressLen

		fmt.Fprintf(out, "%s%s%s%s\n", prefix, strings.Repeat("=", currentProgressLen), strings.Repeat(" ", remainingProgressLen), suffix)
	}
	return ProgressBar{
		func(i int) {
			atomic.StoreInt32(&value, int32(i))
			update(false)
		},
		func(i int) {
			atomic.AddInt32(&value, int32(i))
			update(false)
		}, func() {
			update(true)
		},
	}
}
