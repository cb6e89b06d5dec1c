// io.go provides buffered output plumbing for the compiler driver. Output
// is built up in a Writer's internal buffer and funneled through a single
// listener goroutine that owns the destination (file or stdout), mirroring
// the producer/listener split a parallel backend would use for its
// backend -- here there is only ever one producer, but the CLI's dual
// "-o file" / stdout destination still wants a single owner of the sink.

package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Writer buffers output in a strings.Builder and ships it to the
// destination writer through a channel when Flush or Close is called.
type Writer struct {
	sb strings.Builder
	c  chan string
}

// ---------------------
// ----- Constants -----
// ---------------------

// ---------------------
// ----- globals -----
// ---------------------

var wc chan string     // Write channel used for receiving data from the producer.
var cc chan struct{}   // Close channel used by main thread to end write operations.
var wg *sync.WaitGroup // Synchronises when I/O has finished writing to output.

// ---------------------
// ----- functions -----
// ---------------------

// Write writes a format string to the Writer's buffer.
func (w *Writer) Write(format string, args ...interface{}) {
	w.sb.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes a plain string to the Writer's buffer.
func (w *Writer) WriteString(s string) {
	w.sb.WriteString(s)
}

// Ins1 writes a one-operand instruction line.
func (w *Writer) Ins1(op, rs1 string) {
	w.sb.WriteString(fmt.Sprintf("  %s %s\n", op, rs1))
}

// Ins2 writes a two-operand instruction line: destination then single source.
func (w *Writer) Ins2(op, rd, rs1 string) {
	w.sb.WriteString(fmt.Sprintf("  %s %s, %s\n", op, rd, rs1))
}

// Ins2imm writes a destination, source register and signed immediate instruction line.
func (w *Writer) Ins2imm(op, rd, rs1 string, imm int) {
	w.sb.WriteString(fmt.Sprintf("  %s %s, %s, %d\n", op, rd, rs1, imm))
}

// Ins3 writes a destination and two source register instruction line.
func (w *Writer) Ins3(op, rd, rs1, rs2 string) {
	w.sb.WriteString(fmt.Sprintf("  %s %s, %s, %s\n", op, rd, rs1, rs2))
}

// LoadStore writes a load or store instruction of register reg with the
// given offset to the pointer register (sp).
func (w *Writer) LoadStore(op, reg string, offset int, pointer string) {
	w.sb.WriteString(fmt.Sprintf("  %s %s, %d(%s)\n", op, reg, offset, pointer))
}

// LoadStoreIndirect writes a load or store instruction of register reg
// through the given base register with zero offset, used once a large
// offset has already been materialised into the base register.
func (w *Writer) LoadStoreIndirect(op, reg, base string) {
	w.sb.WriteString(fmt.Sprintf("  %s %s, 0(%s)\n", op, reg, base))
}

// Label writes a one-line label with the given name.
func (w *Writer) Label(name string) {
	w.sb.WriteString(fmt.Sprintf("%s:\n", name))
}

// Directive writes an assembler directive line (e.g. ".globl main").
func (w *Writer) Directive(format string, args ...interface{}) {
	w.sb.WriteString(fmt.Sprintf(".%s\n", fmt.Sprintf(format, args...)))
}

// Flush empties the Writer's buffer and sends the buffered data to the
// destination writer over the Writer's channel.
func (w *Writer) Flush() {
	w.c <- w.sb.String()
	w.sb = strings.Builder{}
}

// Close flushes the Writer's buffer and signals that this producer is done.
func (w *Writer) Close() {
	w.Flush()
	w.c = nil
	wg.Done()
}

// NewWriter returns a new Writer bound to the current output destination.
// Must not be called before ListenWrite.
func NewWriter() Writer {
	wg.Add(1)
	return Writer{c: wc}
}

// ReadSource reads source code from the given file path.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

// ListenWrite starts the listener goroutine that owns the output
// destination: file f if non-nil, otherwise stdout. The function returns
// immediately; call Close to signal shutdown once all Writers are done.
func ListenWrite(f *os.File, wgg *sync.WaitGroup) {
	wg = wgg
	// The write channel is unbuffered so that each Flush rendezvouses
	// with the listener: when a send returns, every previously sent
	// chunk has already been written and flushed to the destination.
	// Close's final (empty) flush therefore guarantees all real output
	// has reached the file before the WaitGroup releases the caller.
	wc = make(chan string)
	cc = make(chan struct{}, 1)

	var out *bufio.Writer
	if f != nil {
		out = bufio.NewWriter(f)
	} else {
		out = bufio.NewWriter(os.Stdout)
	}

	go func(wc chan string, cc chan struct{}) {
		defer close(wc)
		defer close(cc)
		for {
			select {
			case s := <-wc:
				if _, err := out.WriteString(s); err != nil {
					fmt.Println(err)
				}
				if err := out.Flush(); err != nil {
					fmt.Println(err)
				}
			case <-cc:
				return
			}
		}
	}(wc, cc)
}

// Close sends the termination signal to the writer listener.
func Close() {
	cc <- struct{}{}
}
