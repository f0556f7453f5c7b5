package libdiff

// Operation names of RFC 6902 patch documents.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

// Member names of patch operations.
const (
	OpField    = "op"
	PathField  = "path"
	FromField  = "from"
	ValueField = "value"
)
