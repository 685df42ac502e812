package models

import "time"

// Category classifies the situation an excuse describes.
type Category string

// The four real categories plus the "random" sentinel, which is only valid
// on input and is resolved to a real category before generation.
const (
	CategoryHealth    Category = "health"
	CategoryFamily    Category = "family"
	CategoryTransport Category = "transport"
	CategoryPersonal  Category = "personal"
	CategoryRandom    Category = "random"
)

// Categories lists the concrete categories an excuse record may carry.
var Categories = []Category{CategoryHealth, CategoryFamily, CategoryTransport, CategoryPersonal}

// ValidRequestCategory reports whether c is acceptable in a generation
// request. "random" is allowed here but never stored on a record.
func (c Category) ValidRequestCategory() bool {
	return c == CategoryRandom || c.Concrete()
}

// Concrete reports whether c is one of the four storable categories.
func (c Category) Concrete() bool {
	switch c {
	case CategoryHealth, CategoryFamily, CategoryTransport, CategoryPersonal:
		return true
	}
	return false
}

// Tone is the register of the generated text.
type Tone string

const (
	ToneLight    Tone = "light"
	ToneModerate Tone = "moderate"
	ToneSerious  Tone = "serious"
)

// Valid reports whether t is one of the three supported tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneLight, ToneModerate, ToneSerious:
		return true
	}
	return false
}

// Excuse is a single generated text artifact. Created once per successful
// generation call; mutated only by the bookmark toggle; deleted only through
// a bulk clear.
type Excuse struct {
	// ID is a sequential integer assigned by the store, starting at 1.
	ID int64 `json:"id"`

	// UserID references the owning user. nil means the excuse was
	// generated by an anonymous guest.
	UserID *string `json:"userId"`

	// Category is one of the four concrete categories (never "random").
	Category string `json:"category"`

	// Tone echoes the tone the excuse was requested with.
	Tone string `json:"tone"`

	// Content is the generated Korean excuse text.
	Content string `json:"content"`

	// UserInput preserves the free-text situation description the user
	// supplied with the request, if any.
	UserInput *string `json:"userInput"`

	CreatedAt time.Time `json:"createdAt"`

	// IsBookmarked is stored as 0/1 rather than a boolean, matching the
	// persisted column type.
	IsBookmarked int `json:"isBookmarked"`
}

// TableName returns the name of the database table
// associated with the Excuse model.
func (e Excuse) TableName() string {
	return "excuses"
}
