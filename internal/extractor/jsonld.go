package extractor

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"pricewatch/internal/model"
)

// jsonValue is a tagged representation of a decoded JSON value. Object
// members keep their document order, which encoding/json maps would
// not, so "first offer wins" stays deterministic.
type jsonValue struct {
	kind    jsonKind
	members []jsonMember // kindObject
	items   []jsonValue  // kindArray
	str     string       // kindString
	num     json.Number  // kindNumber
}

type jsonMember struct {
	key string
	val jsonValue
}

type jsonKind int

const (
	kindNull jsonKind = iota
	kindObject
	kindArray
	kindString
	kindNumber
	kindBool
)

func (v jsonValue) member(key string) (jsonValue, bool) {
	for _, m := range v.members {
		if m.key == key {
			return m.val, true
		}
	}
	return jsonValue{}, false
}

// parseJSON decodes a complete JSON document. Trailing non-whitespace
// content after the first value is an error, matching strict one-shot
// parsing.
func parseJSON(text string) (jsonValue, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return jsonValue{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return jsonValue{}, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (jsonValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return jsonValue{}, err
	}
	return parseFromToken(dec, tok)
}

func parseFromToken(dec *json.Decoder, tok json.Token) (jsonValue, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := jsonValue{kind: kindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return jsonValue{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return jsonValue{}, errors.New("object key is not a string")
				}
				val, err := parseValue(dec)
				if err != nil {
					return jsonValue{}, err
				}
				obj.members = append(obj.members, jsonMember{key: key, val: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return jsonValue{}, err
			}
			return obj, nil
		case '[':
			arr := jsonValue{kind: kindArray}
			for dec.More() {
				item, err := parseValue(dec)
				if err != nil {
					return jsonValue{}, err
				}
				arr.items = append(arr.items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return jsonValue{}, err
			}
			return arr, nil
		}
		return jsonValue{}, errors.New("unexpected delimiter")
	case string:
		return jsonValue{kind: kindString, str: t}, nil
	case json.Number:
		return jsonValue{kind: kindNumber, num: t}, nil
	case bool:
		return jsonValue{kind: kindBool}, nil
	case nil:
		return jsonValue{kind: kindNull}, nil
	}
	return jsonValue{}, errors.New("unexpected token")
}

// scanBlock parses one JSON-LD block and looks for an offer carrying a
// price. Traversal is depth-first pre-order: each object is inspected
// before the objects nested inside its values, all in document order.
func scanBlock(block string) (model.ExtractedPrice, bool) {
	root, err := parseJSON(block)
	if err != nil {
		return model.ExtractedPrice{}, false
	}

	for _, obj := range collectObjects(root) {
		offers, present := obj.member("offers")
		if !present || offers.kind == kindNull {
			continue
		}

		list := offers.items
		if offers.kind != kindArray {
			list = []jsonValue{offers}
		}

		for _, entry := range list {
			if entry.kind != kindObject {
				continue
			}
			raw := priceText(entry, "price")
			if raw == "" {
				if spec, ok := entry.member("priceSpecification"); ok && spec.kind == kindObject {
					raw = priceText(spec, "price")
				}
			}
			if raw == "" {
				continue
			}
			currency := ""
			if c, ok := entry.member("priceCurrency"); ok && c.kind == kindString {
				currency = c.str
			}
			return model.ExtractedPrice{Raw: raw, Currency: currency}, true
		}
	}
	return model.ExtractedPrice{}, false
}

// collectObjects gathers every object in the tree, pre-order. Only
// objects and arrays are descended into.
func collectObjects(v jsonValue) []jsonValue {
	var out []jsonValue
	switch v.kind {
	case kindObject:
		out = append(out, v)
		for _, m := range v.members {
			out = append(out, collectObjects(m.val)...)
		}
	case kindArray:
		for _, item := range v.items {
			out = append(out, collectObjects(item)...)
		}
	}
	return out
}

// priceText renders an offer's price field to text. Empty strings and
// zero are "no price" so the priceSpecification fallback can apply.
func priceText(obj jsonValue, key string) string {
	v, ok := obj.member(key)
	if !ok {
		return ""
	}
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		if f, err := v.num.Float64(); err != nil || f == 0 {
			return ""
		}
		return v.num.String()
	}
	return ""
}
