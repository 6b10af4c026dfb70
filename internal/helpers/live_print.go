package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/acarl005/stripansi"
)

// NoCopy trips `go vet -copylocks` when a struct embedding it is copied.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

// LiveLogger prints log lines above a block of footer lines that is redrawn
// in place on every update.
type LiveLogger struct {
	out     io.Writer
	width   int
	footers []string

	lock   sync.Mutex
	noCopy NoCopy
}

var _ Logger = &LiveLogger{}

func NewLiveLogger() *LiveLogger {
	return NewLiveLoggerTo(os.Stdout, termWidth())
}

func NewLiveLoggerTo(out io.Writer, width int) *LiveLogger {
	l := &LiveLogger{out: out, width: width, footers: []string{}}
	l.PrintLive(Empty[string](), "", l.FooterString())
	return l
}

type _footerLogger struct {
	logger *LiveLogger
	i      int
}

// NewFooterLogger routes every log call into footer line i of logger.
func NewFooterLogger(logger *LiveLogger, i int) Logger {
	return &_footerLogger{logger: logger, i: i}
}

func (l *_footerLogger) Println(v ...any) {
	l.logger.SetFooter(fmt.Sprintln(v...), l.i)
}
func (l *_footerLogger) Printf(format string, v ...any) {
	l.logger.SetFooter(fmt.Sprintf(format, v...), l.i)
}
func (l *_footerLogger) Print(v ...any) {
	l.logger.SetFooter(fmt.Sprint(v...), l.i)
}

func (l *LiveLogger) FooterString() string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.footerString()
}

func (l *LiveLogger) footerString() string {
	return strings.Join(l.footers, "\n")
}

func (l *LiveLogger) FlushFooter() {
	l.Println(l.FooterString())
}

func (l *LiveLogger) Println(v ...interface{}) {
	l.Print(fmt.Sprintln(v...))
}

func (l *LiveLogger) Printf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(format, v...))
}

func (l *LiveLogger) Print(xs ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()

	footer := l.footerString()
	l.printLive(Some(fmt.Sprint(xs...)), footer, footer)
}

func runeCountIgnoringAnsi(s string) int {
	return utf8.RuneCountInString(stripansi.Strip(s))
}

func wrapLine(s string, width int) string {
	if runeCountIgnoringAnsi(s) < width {
		return s
	}

	words := strings.Split(s, " ")
	lines := []string{}
	line := []string{}
	for _, word := range words {
		joinedLine := strings.Join(line, " ")
		if runeCountIgnoringAnsi(joinedLine)+runeCountIgnoringAnsi(word)+1 > width && len(line) != 0 {
			lines = append(lines, joinedLine)
			line = []string{word}
		} else {
			line = append(line, word)
		}
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(
		MapSlice(lines, func(s string) string { return strings.TrimSpace(s) }), "\n")
}

func wrapText(s string, width int, indent string) string {
	result := []string{}
	for _, line := range strings.Split(s, "\n") {
		result = append(result, Indent(wrapLine(line, width), indent))
	}

	return strings.Join(result, "\n")
}

func (l *LiveLogger) SetFooter(s string, index int) {
	s = wrapText(strings.TrimSpace(s), l.width, "")

	l.lock.Lock()
	defer l.lock.Unlock()

	prevFooterString := l.footerString()

	for i := len(l.footers) - 1; i < index; i++ {
		l.footers = append(l.footers, "")
	}
	l.footers[index] = s

	l.printLive(Empty[string](), prevFooterString, l.footerString())
}

// PrintLive moves the cursor above previousFooter, clears to the end of the
// screen, writes output and then redraws footer.
func (l *LiveLogger) PrintLive(output Optional[string], previousFooter string, footer string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printLive(output, previousFooter, footer)
}

// printLive expects l.lock to be held.
func (l *LiveLogger) printLive(output Optional[string], previousFooter string, footer string) {
	if previousFooter != "" {
		for i := 0; i < len(strings.Split(previousFooter, "\n")); i++ {
			fmt.Fprint(l.out, "\033[A")
		}
	}

	fmt.Fprint(l.out, "\033[J")

	if output.HasValue() {
		fmt.Fprint(l.out, output.Value())
	}

	if footer != "" {
		fmt.Fprintln(l.out, footer)
	}
}
