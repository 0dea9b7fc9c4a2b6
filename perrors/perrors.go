/*
 * Piet - Error taxonomy: the fatal errors that cross the interpreter's
 * boundary. Every other failure mode (stack underflow, divide by zero,
 * bad roll depth, output on empty stack, input EOF) is silent per
 * spec.md 7 and is never represented as an error value.
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

package perrors

import "errors"

var (
	// ErrInvalidStart is returned when the program's starting codel
	// (0,0) is Black: there is no valid block to begin execution from.
	ErrInvalidStart = errors.New("piet: starting codel is black")

	// ErrStepLimitExceeded is returned by Run when the caller-supplied
	// step limit (spec.md 5) is reached before the program terminates.
	ErrStepLimitExceeded = errors.New("piet: step limit exceeded")

	// ErrMalformedImage is returned by the decoder for an image whose
	// dimensions are zero.
	ErrMalformedImage = errors.New("piet: malformed image")

	// ErrDecode wraps an underlying image-decoding failure (unsupported
	// format, truncated file, I/O error opening the source).
	ErrDecode = errors.New("piet: could not decode image")
)
