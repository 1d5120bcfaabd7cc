package api

import "errors"

var errMissingAuth = errors.New("missing or malformed authorization header")
