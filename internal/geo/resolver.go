package geo

// Resolver maps a client network address to a two-letter country code.
// Resolution is best effort: an empty string means unknown and is never an
// error the caller has to handle.
type Resolver interface {
	Country(ip string) string
}
