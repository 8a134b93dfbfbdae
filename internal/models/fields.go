package models

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

// FieldMap flattens a row struct into a name/value map keyed by the csv tag.
// Decimal fields render through their canonical string form. The row must be
// a struct or a pointer to one.
func FieldMap(row any) map[string]string {
	v := reflect.ValueOf(row)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	fields := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("csv")
		if tag == "" || tag == "-" {
			continue
		}
		switch value := v.Field(i).Interface().(type) {
		case decimal.Decimal:
			fields[tag] = value.String()
		case string:
			fields[tag] = value
		default:
			fields[tag] = fmt.Sprintf("%v", value)
		}
	}
	return fields
}

// SetField writes a string value into the struct field carrying the given
// csv tag. Decimal fields parse the value; a non-numeric value is an error.
// The row must be a pointer to a struct.
func SetField(row any, name, value string) error {
	v := reflect.ValueOf(row)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("row must be a pointer to a struct, got %T", row)
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("csv") != name {
			continue
		}
		field := v.Field(i)
		if _, ok := field.Interface().(decimal.Decimal); ok {
			dec, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			field.Set(reflect.ValueOf(dec))
			return nil
		}
		if field.Kind() != reflect.String {
			return fmt.Errorf("field %s is not assignable from a string", name)
		}
		field.SetString(value)
		return nil
	}
	return fmt.Errorf("no field tagged %q in %s", name, t.Name())
}
