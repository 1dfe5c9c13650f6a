package v1specs

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func encodeUUID(e *jx.Encoder, v uuid.UUID) { e.Str(v.String()) }

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	raw, err := d.Str()
	if err != nil {
		return uuid.Nil, err //nolint: wrapcheck
	}

	return uuid.Parse(raw) //nolint: wrapcheck
}

func encodeDateTime(e *jx.Encoder, v time.Time) { e.Str(v.Format(time.RFC3339Nano)) }

func decodeDateTime(d *jx.Decoder) (time.Time, error) {
	raw, err := d.Str()
	if err != nil {
		return time.Time{}, err //nolint: wrapcheck
	}

	return time.Parse(time.RFC3339Nano, raw) //nolint: wrapcheck
}

// skipNull consumes a JSON null and reports whether one was found.
func skipNull(d *jx.Decoder) (bool, error) {
	if d.Next() != jx.Null {
		return false, nil
	}

	return true, d.Null() //nolint: wrapcheck
}

// requiredFields tracks which required keys of an object were seen.
type requiredFields map[string]bool

func (r requiredFields) check(names ...string) error {
	for _, name := range names {
		if !r[name] {
			return errors.Errorf("field %q is required", name)
		}
	}

	return nil
}

// Encode encodes FieldDiff as json.
func (s *FieldDiff) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("oldValue")
	if s.OldValue.Set && !s.OldValue.Null {
		e.Str(s.OldValue.Value)
	} else {
		e.Null()
	}
	e.FieldStart("newValue")
	e.Str(s.NewValue)
	e.ObjEnd()
}

// Decode decodes FieldDiff from json.
func (s *FieldDiff) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "oldValue":
			s.OldValue = OptNilString{Set: true}
			null, err := skipNull(d)
			if err != nil {
				return err
			}
			if null {
				s.OldValue.Null = true

				return nil
			}
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.OldValue.Value = v
		case "newValue":
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.NewValue = v
			seen["newValue"] = true
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode FieldDiff")
	}

	return seen.check("newValue")
}

// Encode encodes MediaRef as json.
func (s *MediaRef) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("assetId")
	e.Str(s.AssetId)
	e.FieldStart("checksum")
	e.Str(s.Checksum)
	e.ObjEnd()
}

// Decode decodes MediaRef from json.
func (s *MediaRef) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "assetId":
			s.AssetId, err = d.Str()
			seen["assetId"] = true
		case "checksum":
			s.Checksum, err = d.Str()
			seen["checksum"] = true
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return errors.Wrap(err, "decode MediaRef")
	}

	return seen.check("assetId", "checksum")
}

// Encode encodes CategoryChange as json.
func (s *CategoryChange) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("operation")
	e.Str(string(s.Operation))
	e.FieldStart("categoryId")
	e.Int64(s.CategoryId)
	e.ObjEnd()
}

// Decode decodes CategoryChange from json.
func (s *CategoryChange) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "operation":
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.Operation = CategoryChangeOperation(v)
			seen["operation"] = true
		case "categoryId":
			v, err := d.Int64()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.CategoryId = v
			seen["categoryId"] = true
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode CategoryChange")
	}

	return seen.check("operation", "categoryId")
}

// Encode encodes ChangePayload as json. Unset branches are omitted.
func (s *ChangePayload) Encode(e *jx.Encoder) {
	e.ObjStart()
	if s.Field != nil {
		e.FieldStart("field")
		s.Field.Encode(e)
	}
	if s.Media != nil {
		e.FieldStart("media")
		s.Media.Encode(e)
	}
	if s.Category != nil {
		e.FieldStart("category")
		s.Category.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes ChangePayload from json.
func (s *ChangePayload) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if null, err := skipNull(d); err != nil || null {
			return err
		}
		switch string(k) {
		case "field":
			s.Field = &FieldDiff{}

			return s.Field.Decode(d)
		case "media":
			s.Media = &MediaRef{}

			return s.Media.Decode(d)
		case "category":
			s.Category = &CategoryChange{}

			return s.Category.Decode(d)
		default:
			return d.Skip() //nolint: wrapcheck
		}
	}); err != nil {
		return errors.Wrap(err, "decode ChangePayload")
	}

	return nil
}

// Encode encodes Change as json.
func (s *Change) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	encodeUUID(e, s.ID)
	e.FieldStart("entityType")
	e.Str(string(s.EntityType))
	e.FieldStart("entityId")
	e.Int64(s.EntityId)
	e.FieldStart("fieldKey")
	e.Str(s.FieldKey)
	e.FieldStart("payload")
	s.Payload.Encode(e)
	e.FieldStart("status")
	e.Str(string(s.Status))
	e.FieldStart("submittedBy")
	encodeUUID(e, s.SubmittedBy)
	if s.ReviewedBy.Set {
		e.FieldStart("reviewedBy")
		encodeUUID(e, s.ReviewedBy.Value)
	}
	if s.RejectionReason.Set {
		e.FieldStart("rejectionReason")
		e.Str(s.RejectionReason.Value)
	}
	e.FieldStart("entityVersionAtSubmit")
	e.Int64(s.EntityVersionAtSubmit)
	e.FieldStart("createdAt")
	encodeDateTime(e, s.CreatedAt)
	if s.ResolvedAt.Set {
		e.FieldStart("resolvedAt")
		encodeDateTime(e, s.ResolvedAt.Value)
	}
	e.ObjEnd()
}

// Decode decodes Change from json.
//
//nolint: cyclop, funlen
func (s *Change) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		key := string(k)
		switch key {
		case "id":
			s.ID, err = decodeUUID(d)
		case "entityType":
			var v string
			v, err = d.Str()
			s.EntityType = EntityType(v)
		case "entityId":
			s.EntityId, err = d.Int64()
		case "fieldKey":
			s.FieldKey, err = d.Str()
		case "payload":
			err = s.Payload.Decode(d)
		case "status":
			var v string
			v, err = d.Str()
			s.Status = ChangeStatus(v)
		case "submittedBy":
			s.SubmittedBy, err = decodeUUID(d)
		case "reviewedBy":
			s.ReviewedBy.Set = true
			s.ReviewedBy.Value, err = decodeUUID(d)
		case "rejectionReason":
			s.RejectionReason.Set = true
			s.RejectionReason.Value, err = d.Str()
		case "entityVersionAtSubmit":
			s.EntityVersionAtSubmit, err = d.Int64()
		case "createdAt":
			s.CreatedAt, err = decodeDateTime(d)
		case "resolvedAt":
			s.ResolvedAt.Set = true
			s.ResolvedAt.Value, err = decodeDateTime(d)
		default:
			return d.Skip() //nolint: wrapcheck
		}
		seen[key] = true

		return err
	}); err != nil {
		return errors.Wrap(err, "decode Change")
	}

	return seen.check("id", "entityType", "entityId", "fieldKey", "payload", "status", "submittedBy", "createdAt")
}

// Encode encodes ChangeList as json.
func (s *ChangeList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range s.Items {
		s.Items[i].Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Decode decodes ChangeList from json.
func (s *ChangeList) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if string(k) != "items" {
			return d.Skip() //nolint: wrapcheck
		}
		s.Items = make([]Change, 0)

		return d.Arr(func(d *jx.Decoder) error {
			var item Change
			if err := item.Decode(d); err != nil {
				return err
			}
			s.Items = append(s.Items, item)

			return nil
		})
	}); err != nil {
		return errors.Wrap(err, "decode ChangeList")
	}

	return nil
}

// Encode encodes SubmitChangeRequest as json.
func (s *SubmitChangeRequest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("entityType")
	e.Str(string(s.EntityType))
	if s.FieldKey.Set {
		e.FieldStart("fieldKey")
		e.Str(s.FieldKey.Value)
	}
	e.FieldStart("payload")
	s.Payload.Encode(e)
	e.ObjEnd()
}

// Decode decodes SubmitChangeRequest from json.
func (s *SubmitChangeRequest) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "entityType":
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.EntityType = EntityType(v)
			seen["entityType"] = true
		case "fieldKey":
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			s.FieldKey.SetTo(v)
		case "payload":
			seen["payload"] = true

			return s.Payload.Decode(d)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SubmitChangeRequest")
	}

	return seen.check("entityType", "payload")
}

// Encode encodes RejectChangeRequest as json.
func (s *RejectChangeRequest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("reason")
	e.Str(s.Reason)
	e.ObjEnd()
}

// Decode decodes RejectChangeRequest from json.
func (s *RejectChangeRequest) Decode(d *jx.Decoder) error {
	seen := requiredFields{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if string(k) != "reason" {
			return d.Skip() //nolint: wrapcheck
		}
		v, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		s.Reason = v
		seen["reason"] = true

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode RejectChangeRequest")
	}

	return seen.check("reason")
}

// Encode encodes ApprovalResult as json.
func (s *ApprovalResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("change")
	s.Change.Encode(e)
	e.FieldStart("entityVersion")
	e.Int64(s.EntityVersion)
	e.FieldStart("alreadyResolved")
	e.Bool(s.AlreadyResolved)
	e.ObjEnd()
}

// Decode decodes ApprovalResult from json.
func (s *ApprovalResult) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "change":
			err = s.Change.Decode(d)
		case "entityVersion":
			s.EntityVersion, err = d.Int64()
		case "alreadyResolved":
			s.AlreadyResolved, err = d.Bool()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return errors.Wrap(err, "decode ApprovalResult")
	}

	return nil
}

// Encode encodes ResolutionResult as json.
func (s *ResolutionResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("change")
	s.Change.Encode(e)
	e.FieldStart("alreadyResolved")
	e.Bool(s.AlreadyResolved)
	e.ObjEnd()
}

// Decode decodes ResolutionResult from json.
func (s *ResolutionResult) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "change":
			err = s.Change.Decode(d)
		case "alreadyResolved":
			s.AlreadyResolved, err = d.Bool()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return errors.Wrap(err, "decode ResolutionResult")
	}

	return nil
}

// Encode encodes PendingCount as json.
func (s *PendingCount) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("companyId")
	e.Int64(s.CompanyId)
	e.FieldStart("pending")
	e.Int64(s.Pending)
	e.ObjEnd()
}

// Decode decodes PendingCount from json.
func (s *PendingCount) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "companyId":
			s.CompanyId, err = d.Int64()
		case "pending":
			s.Pending, err = d.Int64()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return errors.Wrap(err, "decode PendingCount")
	}

	return nil
}

// Encode encodes Error as json.
func (s *Error) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("message")
	e.Str(s.Message)
	if s.Change.Set {
		e.FieldStart("change")
		s.Change.Value.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes Error from json.
func (s *Error) Decode(d *jx.Decoder) error {
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "code":
			s.Code, err = d.Str()
		case "message":
			s.Message, err = d.Str()
		case "change":
			s.Change.Set = true
			err = s.Change.Value.Decode(d)
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return errors.Wrap(err, "decode Error")
	}

	return nil
}
