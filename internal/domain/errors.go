package domain

import "errors"

// Hard-rejection sentinels. A service returning one of these (possibly
// wrapped) blocks the save; everything else advisory is an Advisory value,
// never an error.
var (
	ErrDuplicateLicense        = errors.New("duplicate licenses on party")
	ErrNoDefaultLicense        = errors.New("no default license")
	ErrMultipleDefaultLicenses = errors.New("multiple default licenses")
	ErrUnknownDoctype          = errors.New("unknown doctype")
)

// Advisory is a non-blocking warning surfaced to the user alongside a
// successful operation. The message is already formatted for display.
type Advisory struct {
	Message string `json:"message"`
}
