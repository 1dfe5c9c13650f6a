package eventsink

import (
	"time"

	"github.com/go-faster/jx"
)

// Encode writes the event as a JSON object.
func (e Event) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("id")
	enc.Str(e.ID)
	enc.FieldStart("changeId")
	enc.Str(e.ChangeID.String())
	enc.FieldStart("status")
	enc.Str(string(e.Status))
	enc.FieldStart("entityType")
	enc.Str(string(e.EntityType))
	enc.FieldStart("entityId")
	enc.Int64(int64(e.EntityID))
	enc.FieldStart("fieldKey")
	enc.Str(e.FieldKey)
	if e.ReviewedBy != nil {
		enc.FieldStart("reviewedBy")
		enc.Str(e.ReviewedBy.String())
	}
	if e.RejectionReason != "" {
		enc.FieldStart("rejectionReason")
		enc.Str(e.RejectionReason)
	}
	enc.FieldStart("occurredAt")
	enc.Str(e.OccurredAt.UTC().Format(time.RFC3339Nano))
	enc.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	var enc jx.Encoder
	e.Encode(&enc)

	return enc.Bytes(), nil
}
