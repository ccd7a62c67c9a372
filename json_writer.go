package stocksim

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object whose members keep their insertion
// order. Its zero value is an empty object.
type jsonObjectWriter struct {
	members bytes.Buffer
	err     error
}

// Append adds the member key with value encoded by json.Marshal. After the
// first failure, Append does nothing and MarshalJSON returns that error.
func (w *jsonObjectWriter) Append(key string, value any) {
	if w.err != nil {
		return
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = fmt.Errorf("invalid key %q: %w", key, err)
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("invalid value for %q: %w", key, err)
		return
	}
	if w.members.Len() > 0 {
		w.members.WriteByte(',')
	}
	w.members.Write(k)
	w.members.WriteByte(':')
	w.members.Write(v)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	obj := make([]byte, 0, w.members.Len()+2)
	obj = append(obj, '{')
	obj = append(obj, w.members.Bytes()...)
	return append(obj, '}'), nil
}
