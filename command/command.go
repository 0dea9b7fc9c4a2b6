/*
 * Piet - Command table: the 18 executable Piet commands and their
 * lookup by hue/lightness transition.
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

package command

// Command is one of the 18 Piet commands, or NoOp when a transition
// carries no instruction.
type Command uint8

const (
	NoOp Command = iota
	Push
	Pop
	Add
	Subtract
	Multiply
	Divide
	Mod
	Not
	Greater
	Pointer
	Switch
	Duplicate
	Roll
	InNum
	InChar
	OutNum
	OutChar
)

var names = [...]string{
	NoOp:      "NoOp",
	Push:      "Push",
	Pop:       "Pop",
	Add:       "Add",
	Subtract:  "Subtract",
	Multiply:  "Multiply",
	Divide:    "Divide",
	Mod:       "Mod",
	Not:       "Not",
	Greater:   "Greater",
	Pointer:   "Pointer",
	Switch:    "Switch",
	Duplicate: "Duplicate",
	Roll:      "Roll",
	InNum:     "InNum",
	InChar:    "InChar",
	OutNum:    "OutNum",
	OutChar:   "OutChar",
}

func (c Command) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// table is the 6x3 command grid of spec.md 4.4, indexed [hueShift][lightnessShift].
var table = [6][3]Command{
	{NoOp, Push, Pop},
	{Add, Subtract, Multiply},
	{Divide, Mod, Not},
	{Greater, Pointer, Switch},
	{Duplicate, Roll, InNum},
	{InChar, OutNum, OutChar},
}

// FromTransition looks up the command for a (hueShift, lightnessShift)
// pair. Both inputs are taken mod 6 and mod 3 respectively so any shift
// value color.Transition can produce is valid, and an out-of-range pair
// wraps onto the table rather than failing. (0,0) yields NoOp (spec.md
// 4.4: blocks are maximal, so a same-color transition should never occur).
func FromTransition(hueShift, lightnessShift uint8) Command {
	h := int(hueShift) % 6
	l := int(lightnessShift) % 3
	return table[h][l]
}
