package display

import "board_syncer/internal/domain"

const DefaultAuthorPrefix = 16

// Formatter turns posts into display fragments.
type Formatter struct {
	AuthorPrefix int
}

func NewFormatter(authorPrefix int) Formatter {
	if authorPrefix <= 0 {
		authorPrefix = DefaultAuthorPrefix
	}
	return Formatter{AuthorPrefix: authorPrefix}
}

func (f Formatter) Format(post domain.Post) domain.Fragment {
	fragment := domain.Fragment{
		PostID:      post.ID,
		Author:      post.Author(f.AuthorPrefix),
		AuthorTitle: post.UserAgent,
		Message:     post.Message,
	}

	t, err := post.Timestamp()
	if err != nil {
		// keep whatever the board sent
		fragment.Clock = post.Time
		return fragment
	}
	fragment.Date = t.Format("02/01/2006")
	fragment.Clock = t.Format("15:04:05")
	return fragment
}
