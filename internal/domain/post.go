package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the fixed-width timestamp format used by the board backend.
const TimeLayout = "20060102150405"

// PostID identifies a post. IDs are assigned by the board in arrival order.
type PostID uint64

func (id PostID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParsePostID parses the decimal form used in backend URLs and payloads.
func ParsePostID(s string) (PostID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse post id %q: %w", s, err)
	}
	return PostID(v), nil
}

type Post struct {
	ID        PostID
	Time      string // YYYYMMDDHHmmss as sent by the board
	Login     string
	UserAgent string
	Message   string
}

// IsAuthenticated reports whether the author posted with a login.
func (p Post) IsAuthenticated() bool {
	return p.Login != ""
}

// Author returns the login, or the user agent cut to maxLen runes for anonymous posts.
func (p Post) Author(maxLen int) string {
	if p.IsAuthenticated() {
		return p.Login
	}
	r := []rune(p.UserAgent)
	if maxLen > 0 && len(r) > maxLen {
		r = r[:maxLen]
	}
	return string(r)
}

// Timestamp parses Time. Posts with a malformed time still display, so callers
// usually fall back to the raw string.
func (p Post) Timestamp() (time.Time, error) {
	t, err := time.Parse(TimeLayout, p.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse post time %q: %w", p.Time, err)
	}
	return t, nil
}

// Fragment is the display form of a single post.
type Fragment struct {
	PostID      PostID
	Author      string
	AuthorTitle string // full user agent, shown on hover in the original board
	Date        string // dd/mm/yyyy
	Clock       string // hh:mm:ss
	Message     string
}

func (f Fragment) String() string {
	return fmt.Sprintf("%s %s> %s", f.Clock, f.Author, f.Message)
}
