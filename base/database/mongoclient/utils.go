package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM flattens a struct into a bson.M by its bson tags. Zero valued
// fields are left out, set pointers are dereferenced, so the result works
// as a selector built from an id struct.
func MakeBsonM(v interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(v))
	typ := val.Type()

	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}

		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}

		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}
		res[tag.Name] = field.Interface()
	}
	return res, nil
}
