package exc

const (
	CodeAssertionFailed = "B0001"
)
