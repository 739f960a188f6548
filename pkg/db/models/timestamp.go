package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// TimestampLayout is the single on-disk and wire representation for creation
// timestamps: an ISO-8601 UTC instant.
const TimestampLayout = time.RFC3339Nano

// Timestamp stores a UTC instant as an ISO-8601 string in BSON and JSON.
// Decoding also accepts native BSON datetimes so documents written by other
// tools read back the same way.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if t.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bsontype.String, bsoncore.AppendString(nil, t.String()), nil
}

func (t *Timestamp) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	value := bsoncore.Value{Type: typ, Data: data}
	switch typ {
	case bsontype.Null, bsontype.Undefined:
		t.Time = time.Time{}
		return nil
	case bsontype.String:
		raw, ok := value.StringValueOK()
		if !ok {
			return fmt.Errorf("timestamp: malformed string value")
		}
		return t.parse(raw)
	case bsontype.DateTime:
		ms, ok := value.DateTimeOK()
		if !ok {
			return fmt.Errorf("timestamp: malformed datetime value")
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	default:
		return fmt.Errorf("timestamp: unsupported bson type %s", typ)
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	return t.parse(raw)
}

func (t *Timestamp) parse(raw string) error {
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		// Values written without an offset are UTC.
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", raw, time.UTC)
		if err != nil {
			return fmt.Errorf("timestamp: parse %q: %w", raw, err)
		}
	}
	t.Time = parsed.UTC()
	return nil
}
