package wacz

import "encoding/json"

// ManifestName is the manifest entry expected at the container root.
const ManifestName = "datapackage.json"

// periodLength is the number of leading characters of the created timestamp
// that form the YYYY-MM period token: 4 digit year, hyphen, 2 digit month.
const periodLength = 7

// Metadata is the provenance record parsed from datapackage.json. Created
// and Period are always set; the optional fields are empty when the manifest
// omits them.
type Metadata struct {
	// Created is the manifest's creation timestamp, kept as the verbatim
	// ISO-8601 string. It is never parsed into a time value; downstream
	// naming only ever uses the leading YYYY-MM slice.
	Created string
	// Period is the first seven characters of Created (YYYY-MM).
	Period string

	Title        string
	Software     string
	MainPageURL  string
	MainPageDate string
}

type datapackage struct {
	Created      *string `json:"created"`
	Title        string  `json:"title"`
	Software     string  `json:"software"`
	MainPageURL  string  `json:"mainPageUrl"`
	MainPageDate string  `json:"mainPageDate"`
}

// ParseMetadata decodes manifest bytes into a Metadata record. The created
// field is required and must start with a YYYY-MM token; optional fields
// default to empty.
func ParseMetadata(data []byte) (Metadata, error) {
	var pkg datapackage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Metadata{}, ErrMalformedManifest
	}

	if pkg.Created == nil {
		return Metadata{}, &MissingFieldError{Field: "created"}
	}
	created := *pkg.Created
	if !validPeriod(created) {
		return Metadata{}, &MalformedTimestampError{Value: created}
	}

	return Metadata{
		Created:      created,
		Period:       created[:periodLength],
		Title:        pkg.Title,
		Software:     pkg.Software,
		MainPageURL:  pkg.MainPageURL,
		MainPageDate: pkg.MainPageDate,
	}, nil
}

// validPeriod reports whether the timestamp begins with a 4 digit year, a
// hyphen, and a 2 digit month. Nothing beyond the seventh character is
// inspected so well-formed input passes through byte for byte.
func validPeriod(created string) bool {
	if len(created) < periodLength {
		return false
	}
	for i := range periodLength {
		c := created[i]
		if i == 4 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
