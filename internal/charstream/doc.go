// Package charstream turns an iter.Iterator[dbline.Line] into the markable
// character stream the grammar boundary (package grammar) expects: random
// access lookahead, mark/seek/release, and get_text rendered back as a
// string. It is built directly on package markbuf; a Line's text is
// expanded one rune at a time with a synthetic '\n' appended after every
// line, mirroring how the lines were originally split out of `make -p`
// output.
package charstream
