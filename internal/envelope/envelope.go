// Package envelope decodes the backend's response wrapper into a single
// normalized payload shape.
//
// The backend answers in one of several envelopes: a success flag with a
// data field, a success flag with a count field, a success flag with
// neither, or a bare JSON value with no flag at all (legacy endpoints).
// Callers should never have to know which applies, so every response body
// passes through Decode before it reaches any other component.
package envelope

import (
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Kind identifies which envelope shape a response body carried.
type Kind uint8

const (
	// KindData is a success envelope whose data field holds the payload.
	KindData Kind = iota + 1
	// KindCount is a success envelope carrying only a numeric count.
	KindCount
	// KindBody is a success envelope with neither data nor count; the
	// payload is the whole body.
	KindBody
	// KindRaw is a body with no success flag, returned unchanged.
	KindRaw
)

// Payload is the normalized result of unwrapping a response body.
// Raw holds the JSON value callers decode; for KindCount the value is
// also available pre-parsed in Count.
type Payload struct {
	Kind    Kind
	Success bool
	Count   int64
	Raw     jx.Raw
}

// Decode unwraps a response body. Unwrap priority when a success flag is
// present: data field, then count field, then the whole body. Bodies
// without a success flag pass through unchanged. Malformed JSON is an
// error; Decode never invents a payload.
func Decode(body []byte) (Payload, error) {
	d := jx.DecodeBytes(body)
	raw, err := d.Raw()
	if err != nil {
		return Payload{}, errors.Wrap(err, "parse response body")
	}
	if raw.Type() != jx.Object {
		return Payload{Kind: KindRaw, Raw: raw}, nil
	}

	var (
		hasSuccess bool
		success    bool
		dataRaw    jx.Raw
		hasData    bool
		count      int64
		hasCount   bool
	)
	obj := jx.DecodeBytes(raw)
	if err := obj.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "success":
			v, err := d.Raw()
			if err != nil {
				return err
			}
			// Presence is what matters; non-boolean flags still mark
			// an envelope, matching the backend's loose contract.
			hasSuccess = true
			success = v.Type() == jx.Bool && string(v) == "true"
		case "data":
			v, err := d.Raw()
			if err != nil {
				return err
			}
			dataRaw = v
			hasData = true
		case "count":
			n, err := d.Num()
			if err != nil {
				return err
			}
			count, hasCount = numToInt64(n)
		default:
			return d.Skip()
		}
		return nil
	}); err != nil {
		return Payload{}, errors.Wrap(err, "parse envelope")
	}

	switch {
	case !hasSuccess:
		return Payload{Kind: KindRaw, Raw: raw}, nil
	case hasData:
		return Payload{Kind: KindData, Success: success, Raw: dataRaw}, nil
	case hasCount:
		return Payload{Kind: KindCount, Success: success, Count: count}, nil
	default:
		return Payload{Kind: KindBody, Success: success, Raw: raw}, nil
	}
}

// numToInt64 converts a jx number to int64, truncating fractional counts.
func numToInt64(n jx.Num) (int64, bool) {
	if v, err := n.Int64(); err == nil {
		return v, true
	}
	if v, err := n.Float64(); err == nil {
		return int64(v), true
	}
	return 0, false
}

// DecodeInto unmarshals the payload's JSON value into v. It fails for
// KindCount payloads, which carry no JSON value beyond the count itself.
func (p Payload) DecodeInto(v any) error {
	if p.Kind == KindCount {
		return errors.New("count payload has no decodable body")
	}
	if len(p.Raw) == 0 {
		return errors.New("empty payload")
	}
	if err := json.Unmarshal(p.Raw, v); err != nil {
		return errors.Wrap(err, "decode payload")
	}
	return nil
}

// Message extracts a human-readable error message from a response body,
// looking for the conventional message or error string fields. It returns
// an empty string when the body carries neither; callers supply their own
// fallback text in that case.
func Message(body []byte) string {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return ""
	}
	var msg string
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "message", "error":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			if err != nil {
				return err
			}
			if msg == "" || key == "message" {
				msg = s
			}
			return nil
		default:
			return d.Skip()
		}
	})
	return msg
}

// Number coerces the payload into a float64: count payloads yield the
// count, numeric values parse directly, and strings are parsed leniently
// (a trailing percent sign is tolerated, as the payment success-rate
// endpoint formats rates both ways). Anything else yields ok=false.
func (p Payload) Number() (float64, bool) {
	if p.Kind == KindCount {
		return float64(p.Count), true
	}
	switch p.Raw.Type() {
	case jx.Number:
		n, err := jx.DecodeBytes(p.Raw).Num()
		if err != nil {
			return 0, false
		}
		v, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return v, true
	case jx.String:
		s, err := jx.DecodeBytes(p.Raw).Str()
		if err != nil {
			return 0, false
		}
		return parseLooseNumber(s)
	default:
		return 0, false
	}
}

// parseLooseNumber parses a numeric string, tolerating surrounding spaces
// and a trailing percent sign.
func parseLooseNumber(s string) (float64, bool) {
	for len(s) > 0 && (s[len(s)-1] == '%' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
