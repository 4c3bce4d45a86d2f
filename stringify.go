// seehuhn.de/go/vecraster - a 2D vector graphics rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vecraster

import (
	"math"
	"strconv"
	"strings"
)

// Stringify renders a command sequence back into SVG path-data syntax, the
// inverse of Parse. Integers are printed without a decimal point; other
// floats use their default (shortest round-trip) representation.
// Parameters are space-separated, with no trailing space between the last
// two tokens of the whole string.
func Stringify(commands []PathCommand) string {
	var b strings.Builder
	for i, cmd := range commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(cmd.Kind.letter())
		for _, n := range cmd.Numbers {
			b.WriteByte(' ')
			b.WriteString(formatNumber(n))
		}
	}
	return b.String()
}

// String implements fmt.Stringer for *Path.
func (p *Path) String() string {
	return Stringify(p.Commands)
}

func formatNumber(f float32) string {
	if float32(math.Trunc(float64(f))) == f {
		return strconv.FormatFloat(float64(f), 'f', -1, 32)
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
