package fees

import "errors"

// ErrEmptySchoolID is returned when a school id is required.
var ErrEmptySchoolID = errors.New("fees: empty school id")
