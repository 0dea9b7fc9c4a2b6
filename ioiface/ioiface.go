/*
 * Piet - Abstract I/O surface: the four read/write capabilities the
 * InNum/InChar/OutNum/OutChar commands bind to, plus a stdio
 * implementation.
 *
 * Copyright 2025, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package ioiface

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Surface is the abstract I/O capability the interpreter's InNum/InChar/
// OutNum/OutChar commands are bound to (spec.md 6). Implementations may
// block (stdio) or return immediately (an in-memory buffer for tests).
type Surface interface {
	// ReadNumber reads decimal digits up to a non-digit terminator. ok is
	// false on EOF or malformed input; per spec.md 7 this is silent, not
	// fatal, and the caller must leave the stack unchanged.
	ReadNumber() (v int64, ok bool)
	// ReadChar reads one Unicode codepoint. ok is false on EOF.
	ReadChar() (r rune, ok bool)
	// WriteNumber writes the decimal representation of v.
	WriteNumber(v int64) error
	// WriteChar writes r UTF-8 encoded.
	WriteChar(r rune) error
}

// Stdio is the default Surface, reading from an io.Reader and writing to
// an io.Writer through buffered wrappers, matching the teacher's
// bufio.NewReader/bufio.NewWriter console pattern in main.go.
type Stdio struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewStdio wraps r and w in buffered I/O. Callers must call Flush when
// done writing.
func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{r: bufio.NewReader(r), w: bufio.NewWriter(w)}
}

// Flush flushes any buffered output.
func (s *Stdio) Flush() error {
	return s.w.Flush()
}

func (s *Stdio) ReadNumber() (int64, bool) {
	var sb strings.Builder
	neg := false

	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == '-' {
		neg = true
		b, err = s.r.ReadByte()
		if err != nil {
			return 0, false
		}
	}

	for b >= '0' && b <= '9' {
		sb.WriteByte(b)
		b, err = s.r.ReadByte()
		if err != nil {
			break
		}
	}
	if err == nil {
		_ = s.r.UnreadByte()
	}

	if sb.Len() == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func (s *Stdio) ReadChar() (rune, bool) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

func (s *Stdio) WriteNumber(v int64) error {
	_, err := s.w.WriteString(strconv.FormatInt(v, 10))
	return err
}

func (s *Stdio) WriteChar(r rune) error {
	_, err := s.w.WriteRune(r)
	return err
}

// Buffer is an in-memory Surface backing end-to-end tests without
// touching a real terminal: input is consumed from In, output collects
// in Out.
type Buffer struct {
	In  []rune
	Out []rune

	pos int
}

// NewBuffer builds a Buffer pre-loaded with input.
func NewBuffer(input string) *Buffer {
	return &Buffer{In: []rune(input)}
}

func (b *Buffer) ReadNumber() (int64, bool) {
	start := b.pos
	neg := false
	if b.pos < len(b.In) && b.In[b.pos] == '-' {
		neg = true
		b.pos++
	}
	digitStart := b.pos
	for b.pos < len(b.In) && b.In[b.pos] >= '0' && b.In[b.pos] <= '9' {
		b.pos++
	}
	if b.pos == digitStart {
		b.pos = start
		return 0, false
	}
	v, err := strconv.ParseInt(string(b.In[digitStart:b.pos]), 10, 64)
	if err != nil {
		b.pos = start
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func (b *Buffer) ReadChar() (rune, bool) {
	if b.pos >= len(b.In) {
		return 0, false
	}
	r := b.In[b.pos]
	b.pos++
	return r, true
}

func (b *Buffer) WriteNumber(v int64) error {
	b.Out = append(b.Out, []rune(strconv.FormatInt(v, 10))...)
	return nil
}

func (b *Buffer) WriteChar(r rune) error {
	b.Out = append(b.Out, r)
	return nil
}

// String returns the accumulated output.
func (b *Buffer) String() string {
	return string(b.Out)
}
