package buffer

import "strings"

// HTMLBuffer accumulates rendered HTML fragments, one fragment per output line.
type HTMLBuffer struct {
	parts []string
	size  int
}

// New creates a new HTMLBuffer.
func New() *HTMLBuffer {
	return &HTMLBuffer{
		parts: make([]string, 0),
	}
}

// Write appends a fragment to the buffer. Empty fragments are dropped.
func (hb *HTMLBuffer) Write(fragment string) {
	if fragment == "" {
		return
	}
	hb.parts = append(hb.parts, fragment)
	hb.size += len(fragment)
}

// WriteAll appends every fragment of other.
func (hb *HTMLBuffer) WriteAll(other *HTMLBuffer) {
	for _, p := range other.parts {
		hb.Write(p)
	}
}

// Parts returns the fragments written so far.
func (hb *HTMLBuffer) Parts() []string {
	return hb.parts
}

// Len returns the number of fragments.
func (hb *HTMLBuffer) Len() int {
	return len(hb.parts)
}

// First returns the first fragment, or "" when the buffer is empty.
func (hb *HTMLBuffer) First() string {
	if len(hb.parts) == 0 {
		return ""
	}
	return hb.parts[0]
}

// PopLast removes and returns the last written fragment.
func (hb *HTMLBuffer) PopLast() string {
	if len(hb.parts) == 0 {
		return ""
	}
	last := hb.parts[len(hb.parts)-1]
	hb.parts = hb.parts[:len(hb.parts)-1]
	hb.size -= len(last)
	return last
}

// Join 将所有片段按行输出，每行加上 prefix
func (hb *HTMLBuffer) Join(prefix string) string {
	if len(hb.parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(hb.size + len(hb.parts)*(len(prefix)+1))
	for _, p := range hb.parts {
		b.WriteString(prefix)
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the fragments joined by newlines.
func (hb *HTMLBuffer) String() string {
	return hb.Join("")
}
