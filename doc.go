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

// Package vecraster implements a small 2D vector graphics pipeline: SVG
// path-data parsing, adaptive flattening of curves and arcs into polylines,
// a simple polyline stroker, and a supersampled scanline rasterizer.
//
// The pipeline runs in four stages:
//
//	Parse     path-data string -> *Path (its Commands, a []PathCommand)
//	Flatten   []PathCommand    -> ContourSet
//	Stroke    ContourSet       -> ContourSet   (optional, for stroked paint)
//	FillPolygons  ContourSet, Image -> (mutates Image)
//
// Every stage is synchronous and single-threaded; none of it retains state
// between calls beyond what is passed in or returned.
package vecraster
