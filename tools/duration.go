package tools

import (
	"encoding/json"
	"fmt"
	"time"
)

// Nanoseconds carries a time.Duration across the mesos maintenance API,
// which wraps every time value in a {"nanoseconds": N} object. A bare
// integer is accepted on decode as well.
type Nanoseconds struct {
	time.Duration
}

func (n Nanoseconds) IsNone() bool {
	return n.Duration == 0
}

func (n Nanoseconds) MarshalJSON() (b []byte, err error) {
	return []byte(fmt.Sprintf(`{"nanoseconds":%d}`, n.Duration.Nanoseconds())), nil
}

func (n *Nanoseconds) UnmarshalJSON(b []byte) (err error) {
	if b[0] == '{' {
		obj := struct {
			Nanoseconds int64 `json:"nanoseconds"`
		}{}
		if err = json.Unmarshal(b, &obj); err != nil {
			return
		}
		n.Duration = time.Duration(obj.Nanoseconds)
		return
	}

	var id int64
	id, err = json.Number(string(b)).Int64()
	n.Duration = time.Duration(id)

	return
}
