package helpers

import (
	"fmt"
	"log"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type _defaultLogger struct {
}

func (l *_defaultLogger) Println(v ...any) {
	log.Println(v...)
}
func (l *_defaultLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}
func (l *_defaultLogger) Print(v ...any) {
	log.Print(v...)
}

var DefaultLogger = _defaultLogger{}

var _ Logger = &DefaultLogger

// FuncLogger formats each call and hands the text to the wrapped func.
type FuncLogger func(string)

var _ Logger = FuncLogger(nil)

func (f FuncLogger) Println(v ...any) {
	f(fmt.Sprintln(v...))
}
func (f FuncLogger) Printf(format string, v ...any) {
	f(fmt.Sprintf(format, v...))
}
func (f FuncLogger) Print(v ...any) {
	f(fmt.Sprint(v...))
}

var SilentLogger = FuncLogger(func(string) {})
