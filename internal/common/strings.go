package common

// UnknownStr is returned by String methods for out-of-range values.
const UnknownStr = "unknown"
