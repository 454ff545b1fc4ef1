package model

import (
	"strings"

	"github.com/uar-project/uar/pkg/errclass"
)

// Required address keys. No other keys are read.
const (
	AddressStreet  = "street"
	AddressCity    = "city"
	AddressCountry = "country"
)

// addressKeys is the fixed rendering order.
var addressKeys = []string{AddressStreet, AddressCity, AddressCountry}

// Address holds a user's address as a string mapping. The three
// required keys must be present for formatting to succeed.
type Address map[string]string

// Format renders the address as "<street>, <city>, <country>".
// A missing required key fails with ErrAddressFieldMissing.
func (a Address) Format() (string, error) {
	parts := make([]string, 0, len(addressKeys))
	for _, key := range addressKeys {
		v, ok := a[key]
		if !ok {
			return "", errclass.ErrAddressFieldMissing.WithMessagef("address missing %q", key)
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ", "), nil
}

// UserRecord is the aggregate user entity fed to the report
// generator. The generator only reads it; ownership stays with
// whoever constructed the collection. Names carry no identity:
// duplicates are allowed and never deduplicated.
type UserRecord struct {
	Name       string           `json:"name" yaml:"name"`
	Age        int              `json:"age" yaml:"age"`
	Active     bool             `json:"active" yaml:"active"`
	Role       Role             `json:"role" yaml:"role"`
	Address    Address          `json:"address" yaml:"address"`
	Activities []ActivityRecord `json:"activities" yaml:"activities"`
}
