package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLBuffer_WriteAndJoin(t *testing.T) {
	hb := New()
	hb.Write("<p>")
	hb.Write("")
	hb.Write("text")
	hb.Write("</p>")

	assert.Equal(t, 3, hb.Len())
	assert.Equal(t, "<p>", hb.First())
	assert.Equal(t, "<p>\ntext\n</p>\n", hb.String())
	assert.Equal(t, "  <p>\n  text\n  </p>\n", hb.Join("  "))
}

func TestHTMLBuffer_PopLast(t *testing.T) {
	hb := New()
	assert.Equal(t, "", hb.PopLast())
	assert.Equal(t, "", hb.First())
	assert.Equal(t, "", hb.String())

	hb.Write("a")
	hb.Write("b")
	assert.Equal(t, "b", hb.PopLast())
	assert.Equal(t, []string{"a"}, hb.Parts())
	assert.Equal(t, 1, hb.Len())
	assert.Equal(t, "a\n", hb.String())
}

func TestHTMLBuffer_WriteAll(t *testing.T) {
	inner := New()
	inner.Write("x")
	inner.Write("y")

	outer := New()
	outer.Write("<div>")
	outer.WriteAll(inner)
	outer.Write("</div>")
	assert.Equal(t, []string{"<div>", "x", "y", "</div>"}, outer.Parts())
}
