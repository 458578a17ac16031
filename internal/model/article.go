package model

// DefaultNumberOfLikes is the like counter every article starts with.
const DefaultNumberOfLikes = 100

// Article data model. Title and Body are pointers: an absent field is
// never written to storage and is omitted on output, while an empty
// string is kept as is.
type Article struct {
	ID            string  `json:"id"`
	Title         *string `json:"title,omitempty"`
	Body          *string `json:"body,omitempty"`
	NumberOfLikes int     `json:"numberOfLikes"`
}

// ArticleFields is the mutable part of an Article. A nil field means
// "leave unchanged" on update.
type ArticleFields struct {
	Title *string
	Body  *string
}

// Empty reports whether no field is set.
func (f ArticleFields) Empty() bool {
	return f.Title == nil && f.Body == nil
}

// String returns a pointer to s. Handy for building fields in place.
func String(s string) *string {
	return &s
}
