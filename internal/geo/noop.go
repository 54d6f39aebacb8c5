package geo

// Noop is a resolver that never resolves. Used when no GeoIP database is
// configured.
type Noop struct{}

// NewNoop creates a new no-op resolver.
func NewNoop() *Noop {
	return &Noop{}
}

// Country always reports unknown.
func (*Noop) Country(_ string) string {
	return ""
}
