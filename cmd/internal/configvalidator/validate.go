package configvalidator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrUnknownField returns when an unknown field appears in the config.
var ErrUnknownField = errors.New("unknown field")

// CheckForUnknownFields validates the config map against the config struct.
// Every key must match `mapstructure` tag (or the name) of the struct field,
// nested maps must correspond to nested structs and vice versa.
func CheckForUnknownFields(configMap map[string]any, config any) error {
	return checkForUnknownFields(configMap, reflect.TypeOf(config), "")
}

func checkForUnknownFields(configMap map[string]any, t reflect.Type, currentPath string) error {
	expectedFields := getFieldsFromStruct(t)

	keys := make([]string, 0, len(configMap))
	for key := range configMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullPath := key
		if currentPath != "" {
			fullPath = currentPath + "." + key
		}

		fieldType, exists := expectedFields[key]
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		nestedMap, okMap := configMap[key].(map[string]any)
		if okMap != (fieldType.Kind() == reflect.Struct) {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		if okMap {
			if err := checkForUnknownFields(nestedMap, fieldType, fullPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func getFieldsFromStruct(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			fields[tag] = field.Type
		} else {
			fields[field.Name] = field.Type
		}
	}
	return fields
}
