// Package markbuf implements the generic lookahead FIFO shared by the
// character and token streams: a buffer over a lazy iter.Iterator[T] that
// supports random-access lookahead, mark/seek/release, and reference-counted
// garbage collection of positions no mark still refers to.
//
// Every position in the stream has a global index counted from zero at the
// first item, stable across garbage collection. Marks are integer handles
// returned by Mark; handle 0 is reserved and never issued, so a zero value
// reliably means "no mark held". Release drops one mark's hold on its
// position; once no mark and the current read position reference an index,
// the buffer is free to drop it and advance its low-water mark.
package markbuf
