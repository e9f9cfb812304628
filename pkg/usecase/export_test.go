package usecase

// Export unexported functions for testing
var (
	CompareTagNamesForTest = compareTagNames
	LatestTagRefForTest    = latestTagRef
)
