package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set.
//
// queryFields contains the names of all set fields that can be used
// directly as arguments to a gorm Where statement. Fields with the struct
// tag filterField:"false" are processed by explicit logic in the
// controller and are not part of it.
//
// setFields contains the names of all set fields. This can be used to
// filter for zero values without defining them as pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if query.Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
