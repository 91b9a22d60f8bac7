package shared

import (
	"fmt"
	"io"
)

// Printer writes tagged status lines: [INFO], [SUCCESS], [WARNING], [ERROR]
// and [HEADER]. Only the tag is colored.
type Printer struct {
	out io.Writer
	c   *Colors
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, c: NewColors()}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Info(format string, a ...interface{}) {
	p.tagged(p.c.Blue("[INFO]"), format, a...)
}

func (p *Printer) Success(format string, a ...interface{}) {
	p.tagged(p.c.Green("[SUCCESS]"), format, a...)
}

func (p *Printer) Warning(format string, a ...interface{}) {
	p.tagged(p.c.Yellow("[WARNING]"), format, a...)
}

func (p *Printer) Error(format string, a ...interface{}) {
	p.tagged(p.c.Red("[ERROR]"), format, a...)
}

func (p *Printer) Header(format string, a ...interface{}) {
	p.tagged(p.c.Cyan("[HEADER]"), format, a...)
}

// Println writes an untagged line.
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) tagged(tag, format string, a ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", tag, fmt.Sprintf(format, a...))
}
