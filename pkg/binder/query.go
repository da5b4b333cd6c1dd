package binder

import "net/http"

// Query returns a binder that copies URL query parameters into the struct
// pointed to by v. Only the first value of a repeated parameter is used and
// empty values leave the field untouched.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
