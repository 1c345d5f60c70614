package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposer_InsertAtCaret(t *testing.T) {
	c := NewComposer()
	c.InsertAtCaret("hello world")
	c.SetCaret(6)
	c.InsertAtCaret("big ")

	assert.Equal(t, "hello big world", c.Text())
	assert.Equal(t, 10, c.Caret())
}

func TestComposer_SetCaretClamps(t *testing.T) {
	c := NewComposer()
	c.InsertAtCaret("abc")

	c.SetCaret(-5)
	assert.Equal(t, 0, c.Caret())
	c.SetCaret(99)
	assert.Equal(t, 3, c.Caret())
}

func TestComposer_Reset(t *testing.T) {
	c := NewComposer()
	c.InsertAtCaret("draft")
	c.Blur()
	assert.False(t, c.Focused())

	c.Reset()
	assert.Equal(t, "", c.Text())
	assert.Equal(t, 0, c.Caret())
	assert.True(t, c.Focused())
}

func TestComposer_Quotes(t *testing.T) {
	c := NewComposer()
	c.InsertAtCaret("  réponse")
	c.SetCaret(0)

	c.OnTimeSelected("12:00:05")
	c.OnAuthorSelected("ptramo")

	assert.Equal(t, "12:00:05 ptramo<   réponse", c.Text())
	assert.Equal(t, len([]rune("12:00:05 ptramo< ")), c.Caret())
}
