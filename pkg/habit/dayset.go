package habit

import (
	"encoding/json"
	"sort"
)

// DaySet is a set of calendar day keys in YYYY-MM-DD form. Membership
// means the habit was completed that day. The JSON form is a sorted
// string array, so a set can never round-trip with duplicates.
type DaySet map[string]struct{}

func NewDaySet(days ...string) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s DaySet) Has(day string) bool {
	_, ok := s[day]
	return ok
}

func (s DaySet) Add(day string) {
	s[day] = struct{}{}
}

func (s DaySet) Remove(day string) {
	delete(s, day)
}

// Toggle flips membership for day and returns the new membership state.
func (s DaySet) Toggle(day string) bool {
	if s.Has(day) {
		s.Remove(day)
		return false
	}
	s.Add(day)
	return true
}

func (s DaySet) Len() int {
	return len(s)
}

// Keys returns the member days sorted ascending.
func (s DaySet) Keys() []string {
	keys := make([]string, 0, len(s))
	for day := range s {
		keys = append(keys, day)
	}
	sort.Strings(keys)
	return keys
}

func (s DaySet) Clone() DaySet {
	c := make(DaySet, len(s))
	for day := range s {
		c[day] = struct{}{}
	}
	return c
}

func (s DaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

func (s *DaySet) UnmarshalJSON(b []byte) error {
	var days []string
	if err := json.Unmarshal(b, &days); err != nil {
		return err
	}
	*s = NewDaySet(days...)
	return nil
}
