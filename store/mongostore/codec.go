// codec.go - BSON encoding for decimal money values

package mongostore // Declares the package name

import ( // Import required packages
	"fmt"     // Error formatting
	"reflect" // Codec hook signatures

	"github.com/shopspring/decimal"              // Money values
	"go.mongodb.org/mongo-driver/bson"           // Default registry
	"go.mongodb.org/mongo-driver/bson/bsoncodec" // Codec registration
	"go.mongodb.org/mongo-driver/bson/bsonrw"    // Value readers and writers
	"go.mongodb.org/mongo-driver/bson/bsontype"  // BSON type tags
	"go.mongodb.org/mongo-driver/bson/primitive" // Decimal128
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
)

// newRegistry stores money as Decimal128 instead of the struct's internals.
func newRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, bsoncodec.ValueEncoderFunc(encodeDecimal))
	reg.RegisterTypeDecoder(decimalType, bsoncodec.ValueDecoderFunc(decodeDecimal))
	reg.RegisterTypeEncoder(nullDecimalType, bsoncodec.ValueEncoderFunc(encodeNullDecimal))
	reg.RegisterTypeDecoder(nullDecimalType, bsoncodec.ValueDecoderFunc(decodeNullDecimal))
	return reg
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{Name: "DecimalEncodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}
	return writeDecimal(vw, val.Interface().(decimal.Decimal))
}

func encodeNullDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != nullDecimalType {
		return bsoncodec.ValueEncoderError{Name: "NullDecimalEncodeValue", Types: []reflect.Type{nullDecimalType}, Received: val}
	}
	nd := val.Interface().(decimal.NullDecimal)
	if !nd.Valid {
		return vw.WriteNull()
	}
	return writeDecimal(vw, nd.Decimal)
}

func writeDecimal(vw bsonrw.ValueWriter, d decimal.Decimal) error {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return fmt.Errorf("encode decimal %s: %w", d, err)
	}
	return vw.WriteDecimal128(d128)
}

func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "DecimalDecodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}
	d, _, err := readDecimal(vr)
	if err != nil {
		return err
	}
	val.Set(reflect.ValueOf(d))
	return nil
}

func decodeNullDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != nullDecimalType {
		return bsoncodec.ValueDecoderError{Name: "NullDecimalDecodeValue", Types: []reflect.Type{nullDecimalType}, Received: val}
	}
	d, ok, err := readDecimal(vr)
	if err != nil {
		return err
	}
	val.Set(reflect.ValueOf(decimal.NullDecimal{Decimal: d, Valid: ok}))
	return nil
}

// readDecimal accepts the numeric BSON types documents written by other
// clients may contain. ok is false for null and undefined.
func readDecimal(vr bsonrw.ValueReader) (d decimal.Decimal, ok bool, err error) {
	switch vr.Type() {
	case bsontype.Decimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return d, false, err
		}
		d, err = decimal.NewFromString(d128.String())
		return d, err == nil, err
	case bsontype.Double:
		f, err := vr.ReadDouble()
		return decimal.NewFromFloat(f), err == nil, err
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		return decimal.NewFromInt32(i), err == nil, err
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		return decimal.NewFromInt(i), err == nil, err
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return d, false, err
		}
		d, err = decimal.NewFromString(s)
		return d, err == nil, err
	case bsontype.Null:
		return d, false, vr.ReadNull()
	case bsontype.Undefined:
		return d, false, vr.ReadUndefined()
	}
	return d, false, fmt.Errorf("cannot decode BSON %s into a decimal", vr.Type())
}
