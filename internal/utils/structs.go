package utils

import (
	"fmt"
	"reflect"
)

var ColumnTag = "db"

// StructTagValues collects the db tag values of a struct's exported fields,
// recursing into embedded structs so joined row types flatten correctly.
func StructTagValues(input any) []string {

	targetValue := reflect.ValueOf(input)
	if targetValue.Kind() == reflect.Ptr {
		targetValue = targetValue.Elem()
	}

	if targetValue.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	targetType := targetValue.Type()

	result := make([]string, 0, targetValue.NumField())

	for i := 0; i < targetValue.NumField(); i++ {

		field := targetType.Field(i)
		if field.PkgPath != "" {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			result = append(result, StructTagValues(targetValue.Field(i).Interface())...)
			continue
		}

		tagValue := field.Tag.Get(ColumnTag)
		if tagValue == "" || tagValue == "-" {
			continue
		}

		result = append(result, tagValue)

	}

	return result

}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)

}

const columnPrefixFmt = "%s.%s"

// PrefixSliceOfStrings qualifies column names with a table prefix, skipping
// any listed in ignore.
func PrefixSliceOfStrings(prefix string, input []string, ignore ...string) []string {
	out := make([]string, 0, len(input))

inputloop:
	for _, v := range input {
		for _, ignored := range ignore {
			if v == ignored {
				continue inputloop
			}
		}

		out = append(out, fmt.Sprintf(columnPrefixFmt, prefix, v))
	}
	return out
}
