package value

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Value implements database/sql/driver.Valuer so an Owned value can be
// passed directly as a query argument, the same role pgtypes.PGJSON and
// pgtypes.PGArray play in the teacher repo for Postgres-specific wrapping.
func (o Owned) Value() (driver.Value, error) {
	switch o.kind {
	case Null:
		return nil, nil
	case Bool, Int64, Float64, Text, Bytes:
		return o.data, nil
	case UUID:
		u, ok := o.data.(uuidStringer)
		if !ok {
			return nil, &ConversionError{Msg: "uuid value has unexpected underlying type"}
		}
		return u.String(), nil
	case JSON:
		switch v := o.data.(type) {
		case []byte:
			return v, nil
		default:
			return json.Marshal(v)
		}
	case Decimal:
		s, ok := o.data.(fmt.Stringer)
		if !ok {
			return nil, &ConversionError{Msg: "decimal value has unexpected underlying type"}
		}
		return s.String(), nil
	case Timestamp, Date:
		return o.data, nil
	case Inet, MacAddr, BitVector:
		return o.data, nil
	default:
		return nil, &ConversionError{Msg: fmt.Sprintf("unsupported value kind %s", o.kind)}
	}
}

// uuidStringer avoids an import-time dependency on google/uuid's concrete
// type in this file's switch; google.UUID already satisfies it.
type uuidStringer interface {
	String() string
}
