package display

import "sync"

// Composer is the message input area. It tracks its text, caret position in
// runes and whether it holds the focus.
type Composer struct {
	mu      sync.Mutex
	text    []rune
	caret   int
	focused bool
}

func NewComposer() *Composer {
	return &Composer{}
}

// Reset clears the text and gives the focus back to the composer.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = c.text[:0]
	c.caret = 0
	c.focused = true
}

// InsertAtCaret inserts s at the caret, moves the caret after it and focuses
// the composer.
func (c *Composer) InsertAtCaret(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ins := []rune(s)
	text := make([]rune, 0, len(c.text)+len(ins))
	text = append(text, c.text[:c.caret]...)
	text = append(text, ins...)
	text = append(text, c.text[c.caret:]...)

	c.text = text
	c.caret += len(ins)
	c.focused = true
}

// SetCaret moves the caret, clamped to the text bounds.
func (c *Composer) SetCaret(pos int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.caret = max(0, min(pos, len(c.text)))
}

func (c *Composer) Blur() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focused = false
}

func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.text)
}

func (c *Composer) Caret() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.caret
}

func (c *Composer) Focused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focused
}

// OnAuthorSelected quotes an author as "author< ".
func (c *Composer) OnAuthorSelected(text string) {
	c.InsertAtCaret(text + "< ")
}

// OnTimeSelected quotes a clock as "hh:mm:ss ".
func (c *Composer) OnTimeSelected(text string) {
	c.InsertAtCaret(text + " ")
}
