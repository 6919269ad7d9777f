package libdiff

// Diff markers carried in a node's Label.
const (
	DeleteLabel     = "!delete"
	InsertLabel     = "!insert"
	ReplaceLabel    = "!replace"
	StringDiffLabel = "!strdiff"
)
