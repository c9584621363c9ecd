// Package highlight provides syntax highlighting for code blocks.
// It uses the Chroma library to do this work.
//
// Highlighted output is line-preserving:
// the HTML produced for a block of code has exactly as many lines
// as the code itself, and line i of the output renders line i of the input.
// Tokens spanning multiple lines (block comments, multi-line strings)
// are split so that every output line is well-formed HTML on its own.
package highlight
