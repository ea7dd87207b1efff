package main

import (
	"bufio"
	"fmt"
	"io"

	"runtime.link/api/xray"

	"the.quetzal.community/quadsphere/quadsphere"
)

// writeOBJ writes the buffers as a Wavefront OBJ. Vertex colors follow each position,
// as most OBJ readers understand. Triangles are flipped from Godot's clockwise front
// faces to OBJ's counter-clockwise ones and texture coordinates to a bottom left
// origin.
func writeOBJ(w io.Writer, buffers quadsphere.Buffers) error {
	if err := buffers.Validate(); err != nil {
		return xray.New(err)
	}
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "o planet")
	for i, v := range buffers.Vertices {
		c := buffers.Colors[i]
		fmt.Fprintf(out, "v %g %g %g %g %g %g\n", v.X, v.Y, v.Z, c.R, c.G, c.B)
	}
	for _, uv := range buffers.UVs {
		fmt.Fprintf(out, "vt %g %g\n", uv.X, 1-uv.Y)
	}
	for _, n := range buffers.Normals {
		fmt.Fprintf(out, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i < len(buffers.Indices); i += 3 {
		var a, b, c = buffers.Indices[i] + 1, buffers.Indices[i+1] + 1, buffers.Indices[i+2] + 1
		fmt.Fprintf(out, "f %[1]d/%[1]d/%[1]d %[2]d/%[2]d/%[2]d %[3]d/%[3]d/%[3]d\n", a, c, b)
	}
	if err := out.Flush(); err != nil {
		return xray.New(err)
	}
	return nil
}
