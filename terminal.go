package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/term"
)

// lineReader is satisfied by ttyReader and plainReader.
type lineReader interface {
	SetPrompt(prompt string)
	ReadLine() (string, error)
}

// ttyReader is a term.Terminal that treats pasted lines like typed ones.
type ttyReader struct {
	*term.Terminal
}

func (t ttyReader) ReadLine() (string, error) {
	line, err := t.Terminal.ReadLine()
	if errors.Is(err, term.ErrPasteIndicator) {
		err = nil
	}
	return line, err
}

// plainReader reads lines from a pipe or file. Prompts go to w.
type plainReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

func newPlainReader(r io.Reader, w io.Writer) *plainReader {
	return &plainReader{r: bufio.NewReader(r), w: w}
}

func (p *plainReader) SetPrompt(prompt string) {
	p.prompt = prompt
}

func (p *plainReader) ReadLine() (string, error) {
	if p.prompt != "" {
		if _, err := io.WriteString(p.w, p.prompt); err != nil {
			return "", err
		}
	}
	line, err := p.r.ReadString('\n')
	if err == io.EOF && line != "" {
		// Last line without a trailing newline.
		err = nil
	}
	if err != nil {
		return "", err
	}
	if p.prompt != "" {
		// Input isn't echoed, so end the prompt line ourselves.
		if _, err := io.WriteString(p.w, "\n"); err != nil {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// appendTerminalEscaped acts like append(), but breaks terminal escape
// sequences that may be in msg.
func appendTerminalEscaped(out, msg []byte) []byte {
	for _, c := range msg {
		if c == 127 || (c < 32 && c != '\t') {
			out = append(out, '?')
		} else {
			out = append(out, c)
		}
	}
	return out
}

// console writes entries and status messages. esc is nil when colours
// are off.
type console struct {
	w     io.Writer
	esc   *term.EscapeCodes
	clock func() time.Time
}

func newConsole(w io.Writer, esc *term.EscapeCodes) *console {
	return &console{w: w, esc: esc, clock: time.Now}
}

func (c *console) color(code func(*term.EscapeCodes) []byte) []byte {
	if c.esc == nil {
		return nil
	}
	return code(c.esc)
}

func (c *console) terminalMessage(color []byte, msg string, critical bool) {
	line := make([]byte, 0, len(msg)+16)

	line = append(line, ' ')
	line = append(line, color...)
	line = append(line, '*')
	line = append(line, c.color(reset)...)
	line = append(line, []byte(fmt.Sprintf(" (%s) ", c.clock().Format(time.Kitchen)))...)
	if critical {
		line = append(line, c.color(red)...)
	}
	line = appendTerminalEscaped(line, []byte(msg))
	if critical {
		line = append(line, c.color(reset)...)
	}
	line = append(line, '\n')
	c.w.Write(line)
}

// entry prints a single "name lastname" line.
func (c *console) entry(name, lastname string) {
	line := make([]byte, 0, len(name)+len(lastname)+2)
	line = appendTerminalEscaped(line, []byte(name))
	line = append(line, ' ')
	line = appendTerminalEscaped(line, []byte(lastname))
	line = append(line, '\n')
	c.w.Write(line)
}

func reset(e *term.EscapeCodes) []byte   { return e.Reset }
func blue(e *term.EscapeCodes) []byte    { return e.Blue }
func magenta(e *term.EscapeCodes) []byte { return e.Magenta }
func red(e *term.EscapeCodes) []byte     { return e.Red }

func (c *console) info(format string, a ...interface{}) {
	c.terminalMessage(c.color(blue), fmt.Sprintf(format, a...), false)
}
func (c *console) warn(format string, a ...interface{}) {
	c.terminalMessage(c.color(magenta), fmt.Sprintf(format, a...), false)
}

// critical reports an error that ends the session.
func (c *console) critical(format string, a ...interface{}) {
	c.terminalMessage(c.color(red), fmt.Sprintf(format, a...), true)
}
