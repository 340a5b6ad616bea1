package patch

// Coalesce dereferences ptr when set, falling back otherwise. Used where an
// optional request field overrides a configured default.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
