package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Ruby-dev1/AIgnite/internal/catalog"
)

// IntSet is a set of ids stored as a JSON array in a text column.
// Kept sorted so the serialized form is deterministic. Stored as JSON
// rather than a native array type so the sqlite test driver can use
// the same model as postgres.
type IntSet []int

// Contains reports set membership.
func (s IntSet) Contains(id int) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns a set containing id. Adding a present id is a no-op.
func (s IntSet) Add(id int) IntSet {
	if s.Contains(id) {
		return s
	}
	out := append(append(IntSet{}, s...), id)
	sort.Ints(out)
	return out
}

// ContainsAll reports whether every id is in the set.
func (s IntSet) ContainsAll(ids []int) bool {
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

func (s IntSet) Value() (driver.Value, error) {
	if s == nil {
		s = IntSet{}
	}
	data, err := json.Marshal([]int(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (s *IntSet) Scan(value interface{}) error {
	if value == nil {
		*s = IntSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]int)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]int)(s))
	default:
		return fmt.Errorf("cannot scan %T into IntSet", value)
	}
}

// CategoryXP maps a career category to the XP earned from its challenges.
type CategoryXP map[catalog.Category]int

// Total sums XP across all categories.
func (m CategoryXP) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func (m CategoryXP) Value() (driver.Value, error) {
	if m == nil {
		m = CategoryXP{}
	}
	data, err := json.Marshal(map[catalog.Category]int(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *CategoryXP) Scan(value interface{}) error {
	if value == nil {
		*m = CategoryXP{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*map[catalog.Category]int)(m))
	case string:
		return json.Unmarshal([]byte(v), (*map[catalog.Category]int)(m))
	default:
		return fmt.Errorf("cannot scan %T into CategoryXP", value)
	}
}

// StringList is a JSON-encoded list of strings (skills, interests).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}
