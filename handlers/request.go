package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var (
	errEmptyContent   = errors.New("content is empty")
	errInvalidContent = errors.New("content is not text")
)

// decodeBody reads a JSON body into v. A missing body decodes as {}.
// Only a body that is not JSON at all is an error.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// contentText turns the raw content field into the text to store.
// Missing, null, false, 0 and "" carry no content. Other numbers are kept
// as written and true is stored as 1, the way SQLite binds it. Objects and
// arrays are rejected.
func contentText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", errEmptyContent
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", errInvalidContent
	}

	switch x := v.(type) {
	case nil:
		return "", errEmptyContent
	case string:
		if x == "" {
			return "", errEmptyContent
		}
		return x, nil
	case bool:
		if !x {
			return "", errEmptyContent
		}
		return "1", nil
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			return "", errEmptyContent
		}
		return x.String(), nil
	default:
		return "", errInvalidContent
	}
}

// passwordText returns the password when raw is a JSON string. Missing and
// null read as "".
func passwordText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
