package candishared

import (
	"reflect"
	"strconv"
	"strings"
)

type partialUpdateOption struct {
	ignoreFields map[string]struct{}
}

// DBUpdateOptionFunc option func
type DBUpdateOptionFunc func(*partialUpdateOption)

// DBUpdateOptionKeyExtractorResult option func
type DBUpdateOptionKeyExtractorResult struct {
	Key  string
	Skip bool
}

// DBUpdateSetIgnoredFields option func, given struct field names are never set
func DBUpdateSetIgnoredFields(fields ...string) DBUpdateOptionFunc {
	return func(o *partialUpdateOption) {
		o.ignoreFields = make(map[string]struct{})
		for _, field := range fields {
			o.ignoreFields[field] = struct{}{}
		}
	}
}

// DBUpdateMongoExtractorKey struct field key extractor for mongo model,
// fallback to lowercased field name like the mongo driver does
func DBUpdateMongoExtractorKey(structField reflect.StructField) (res DBUpdateOptionKeyExtractorResult) {
	res.Key = strings.ToLower(structField.Name)
	if bsonTag := strings.Split(structField.Tag.Get("bson"), ",")[0]; bsonTag != "" {
		res.Key = bsonTag
	}
	res.Skip = res.Key == "-"
	return res
}

// JoinFieldPath join document keys into dotted field path, empty parts are skipped
func JoinFieldPath(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.Trim(k, "."); k != "" {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, ".")
}

// FieldPathUpdate construct targeted field path update ($set document) from struct,
// every key is prefixed with Prefix so only the addressed sub document is touched
type FieldPathUpdate struct {
	Prefix           string
	KeyExtractorFunc func(structField reflect.StructField) (res DBUpdateOptionKeyExtractorResult)
	// IgnoredFields document keys (relative to Prefix) removed from result
	IgnoredFields []string
}

func (d *FieldPathUpdate) parseOption(opts ...DBUpdateOptionFunc) (o partialUpdateOption) {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToMap method
func (d FieldPathUpdate) ToMap(data interface{}, opts ...DBUpdateOptionFunc) map[string]interface{} {
	opt := d.parseOption(opts...)
	if d.KeyExtractorFunc == nil {
		d.KeyExtractorFunc = DBUpdateMongoExtractorKey
	}

	updateFields := make(map[string]interface{})
	dataValue := reflect.ValueOf(data)
	for dataValue.Kind() == reflect.Ptr {
		if dataValue.IsNil() {
			return updateFields
		}
		dataValue = dataValue.Elem()
	}
	if dataValue.Kind() != reflect.Struct {
		updateFields[d.Prefix] = dataValue.Interface()
		return updateFields
	}

	dataType := dataValue.Type()
	for i := 0; i < dataValue.NumField(); i++ {
		fieldType := dataType.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		if fieldType.Anonymous {
			for k, v := range d.ToMap(dataValue.Field(i).Interface(), opts...) {
				updateFields[k] = v
			}
			continue
		}

		keyExtractor := d.KeyExtractorFunc(fieldType)
		isIgnore, _ := strconv.ParseBool(fieldType.Tag.Get("ignoreUpdate"))
		if keyExtractor.Skip || keyExtractor.Key == "" || isIgnore {
			continue
		}

		if _, ok := opt.ignoreFields[fieldType.Name]; ok {
			continue
		}

		updateFields[JoinFieldPath(d.Prefix, keyExtractor.Key)] = dataValue.Field(i).Interface()
	}

	for _, ignored := range d.IgnoredFields {
		delete(updateFields, JoinFieldPath(d.Prefix, ignored))
	}
	return updateFields
}

