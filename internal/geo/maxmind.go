package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

// MaxMind resolves countries from a local GeoLite2/GeoIP2 country database.
type MaxMind struct {
	reader *geoip2.Reader
}

// NewMaxMind opens the database at path.
func NewMaxMind(path string) (*MaxMind, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}

	return &MaxMind{reader: reader}, nil
}

// Country returns the ISO alpha-2 code for ip, or empty when the address
// does not parse or is not in the database.
func (m *MaxMind) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}

	record, err := m.reader.Country(parsed)
	if err != nil {
		return ""
	}

	return record.Country.IsoCode
}

// Shutdown closes the underlying database reader.
func (m *MaxMind) Shutdown() error {
	return m.reader.Close()
}
