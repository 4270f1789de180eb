package model

import (
	"encoding/json"
	"strings"
)

// OptionID is the canonical identifier of a question option. Imported
// question banks and older clients are inconsistent about whether option
// ids travel as JSON numbers or strings, so the value is normalized to a
// trimmed string once at ingress and only ever compared in that form.
type OptionID string

func (id *OptionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = OptionID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OptionID(n.String())
	return nil
}

func (id OptionID) String() string { return string(id) }
