// Package binder fills request structs from HTTP query strings.
//
// Fields are matched by their `query` struct tag, or by the lowercased field
// name when the tag is absent. A tag of "-" skips the field, and options after
// a comma ("name,omitempty") are ignored. Supported field kinds are string,
// signed and unsigned integers, bool, and pointers to those. Pointer fields
// stay nil when the parameter is missing, which lets handlers tell an absent
// parameter from an explicit zero value.
//
// # Usage
//
//	type listQuery struct {
//	    Limit  *int  `query:"limit"`
//	    Active *bool `query:"active"`
//	}
//
//	var q listQuery
//	if err := binder.Query()(r, &q); err != nil {
//	    // errors.Is(err, binder.ErrFailedToParseQuery)
//	}
//
// Booleans accept everything strconv.ParseBool does plus on/off and yes/no.
package binder
