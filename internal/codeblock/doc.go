// Package codeblock renders fenced code blocks as HTML
// with per-line markup and optional line highlighting.
//
// A fenced code block's info string names its language,
// and may ask for some lines to be emphasized:
//
//	```python lines=3,5-7
//
// [Renderer] turns the code and its info string into a <pre> block
// in which every source line is wrapped in its own element.
// Lines named by the info string are marked as highlighted.
package codeblock
