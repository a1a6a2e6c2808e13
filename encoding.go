package amount

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted; null leaves the amount
// unchanged.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*a, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string, so no digits are lost by
// readers that decode JSON numbers to float64.
// See also method [Amount.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	data := make([]byte, 0, a.num.Digits()+5)
	data = append(data, '"')
	data = a.Append(data)
	data = append(data, '"')
	return data, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Amount.Append].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return a.Append(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.Append(nil), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	var err error
	*a, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// The binary form is the canonical text of the amount.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return a.Append(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The binary form is the canonical text of the amount.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.Append(nil), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// BSON strings are accepted; null leaves the amount unchanged.
// See also constructor [Parse].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (a *Amount) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*a, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Amount{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string.
// See also method [Amount.String].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (a Amount) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, a.bsonString(), nil
}

// parseBSONString parses a BSON string to an amount.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Amount, error) {
	if len(data) < 4 {
		return Amount{}, fmt.Errorf("%w: invalid data length %v", ErrParse, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Amount{}, fmt.Errorf("%w: invalid string length %v", ErrParse, l)
	}
	if data[l+4-1] != 0 {
		return Amount{}, fmt.Errorf("%w: invalid null terminator %v", ErrParse, data[l+4-1])
	}
	return Parse(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the amount.
// The byte order of the result is little-endian.
func (a Amount) bsonString() []byte {
	s := a.Append(nil)
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, integers and floats are accepted. A float is
// converted through its shortest decimal representation.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = Parse(value)
	case []byte:
		*a, err = Parse(string(value))
	case int64:
		*a = NewFromInt64(value)
	case float64:
		*a, err = parseFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

func parseFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("special value %v", f)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// Value implements the [driver.Valuer] interface.
// Value always returns the canonical text of the amount.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The amount is encoded as a msgpack string holding its canonical text.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (a Amount) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(a.String())
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// Nil leaves the amount unchanged.
// See also constructor [Parse].
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (a *Amount) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	if code == msgpcode.Nil {
		return dec.DecodeNil()
	}
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a, err = Parse(s)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.Scan(value); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.UnmarshalJSON(data); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Amount.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullAmount) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.UnmarshalBSONValue(typ, data); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Amount.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullAmount) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Amount.MarshalBSONValue()
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// See also method [Amount.EncodeMsgpack].
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (n NullAmount) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !n.Valid {
		return enc.EncodeNil()
	}
	return n.Amount.EncodeMsgpack(enc)
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// See also method [Amount.DecodeMsgpack].
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (n *NullAmount) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", NullAmount{}, err)
	}
	if code == msgpcode.Nil {
		n.Amount = Amount{}
		n.Valid = false
		return dec.DecodeNil()
	}
	var a Amount
	if err := a.DecodeMsgpack(dec); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}
