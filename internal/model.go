package internal

// HappinessEntry records how a day went on a -2..2 scale.
// A collection holds at most one entry per date; the pair
// (Date, Happiness) is the identity used for edits and deletes.
type HappinessEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Happiness int    `json:"happiness"`
}

// MediaEntry records one piece of media consumed on a date.
// Many entries may share a date; ID is the stable identity.
type MediaEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`     // YYYY-MM-DD
	Type     string `json:"type"`     // book, video, podcast, music
	Duration int    `json:"duration"` // minutes
	Title    string `json:"title,omitempty"`
}
