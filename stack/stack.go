/*
 * Piet - Operand stack: a LIFO sequence of signed 64-bit integers with
 * the Piet-specific fold/roll operations.
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

package stack

import "slices"

// Stack is an ordered sequence of signed 64-bit integers, top at the end.
// Every operation that could underflow is a silent no-op rather than a
// panic or error, per spec.md 4.2/4.6: Piet command failures never abort
// execution.
type Stack struct {
	data []int64
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends a value to the top.
func (s *Stack) Push(v int64) {
	s.data = append(s.data, v)
}

// Pop removes and returns the top value. ok is false on an empty stack.
func (s *Stack) Pop() (v int64, ok bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	last := len(s.data) - 1
	v = s.data[last]
	s.data = s.data[:last]
	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (v int64, ok bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	return s.data[len(s.data)-1], true
}

// Len reports the number of elements on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// MapTop replaces the top element with f(top). No-op on an empty stack.
func (s *Stack) MapTop(f func(int64) int64) {
	if len(s.data) == 0 {
		return
	}
	last := len(s.data) - 1
	s.data[last] = f(s.data[last])
}

// FoldTop pops the top two values (b = top, a = second-from-top) and
// pushes f(a, b). If only one value is present it is left untouched; if
// none, this is a no-op. Arithmetic callers pass (second, top) in that
// order, per spec.md 4.2.
func (s *Stack) FoldTop(f func(a, b int64) int64) {
	if len(s.data) < 2 {
		return
	}
	b, _ := s.Pop()
	a, _ := s.Pop()
	s.Push(f(a, b))
}

// Roll rotates the top `depth` entries by `times` repetitions: positive
// times moves the top toward deeper positions, negative the reverse.
// depth < 0 or depth > Len() discards the operation entirely (spec.md
// 4.2); depth == 0 is a no-op.
func (s *Stack) Roll(depth int, times int64) {
	if depth < 0 || depth > len(s.data) {
		return
	}
	if depth == 0 {
		return
	}

	n := int(times % int64(depth))
	if n < 0 {
		n += depth
	}
	if n == 0 {
		return
	}

	start := len(s.data) - depth
	window := s.data[start:]
	// n repetitions of "move top to the bottom of the window" is the
	// same as a single rotate-right by n: reverse the whole window, then
	// reverse each of the two resulting pieces.
	slices.Reverse(window)
	slices.Reverse(window[:n])
	slices.Reverse(window[n:])
}

// Slice returns a read-only snapshot of the stack contents, bottom
// first, for diagnostics and tests.
func (s *Stack) Slice() []int64 {
	return slices.Clone(s.data)
}
