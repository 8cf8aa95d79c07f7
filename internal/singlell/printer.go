package singlell

import (
	"fmt"
	"io"

	"github.com/lueurxax/linked-list/internal/log"
)

//go:generate mockgen -source=printer.go -destination=mocks/mock_printer.go -package=mocks

const (
	emptyNotice = "The list is empty"
	valueKey    = "value"
)

// Printer is the output channel used by LinkedList.Print.
type Printer interface {
	PrintValue(v any) error
	PrintEmpty() error
	PrintSeparator() error
}

type writerPrinter struct {
	w io.Writer
}

func (p *writerPrinter) PrintValue(v any) error {
	_, err := fmt.Fprintln(p.w, v)
	return err
}

func (p *writerPrinter) PrintEmpty() error {
	_, err := fmt.Fprintln(p.w, emptyNotice)
	return err
}

func (p *writerPrinter) PrintSeparator() error {
	_, err := fmt.Fprint(p.w, "\n\n")
	return err
}

// NewWriterPrinter prints one value per line to w.
func NewWriterPrinter(w io.Writer) Printer {
	return &writerPrinter{w: w}
}

type logPrinter struct {
	log log.Logger
}

func (p *logPrinter) PrintValue(v any) error {
	p.log.WithField(valueKey, v).Info("list value")
	return nil
}

func (p *logPrinter) PrintEmpty() error {
	p.log.Info(emptyNotice)
	return nil
}

func (p *logPrinter) PrintSeparator() error {
	return nil
}

// NewLogPrinter routes printed values through logger at info level.
func NewLogPrinter(logger log.Logger) Printer {
	return &logPrinter{log: logger}
}
