package pick

// TagSet is an ordered, duplicate-free list of selected tags.
type TagSet struct {
	values []string
}

func NewTagSet(values ...string) TagSet {
	var t TagSet
	for _, v := range values {
		t = t.Add(v)
	}
	return t
}

// Add appends v unless it is already present.
func (t TagSet) Add(v string) TagSet {
	if t.Has(v) {
		return t
	}
	out := make([]string, len(t.values), len(t.values)+1)
	copy(out, t.values)
	return TagSet{values: append(out, v)}
}

func (t TagSet) Remove(v string) TagSet {
	out := make([]string, 0, len(t.values))
	for _, x := range t.values {
		if x != v {
			out = append(out, x)
		}
	}
	return TagSet{values: out}
}

func (t TagSet) Toggle(v string) TagSet {
	if t.Has(v) {
		return t.Remove(v)
	}
	return t.Add(v)
}

func (t TagSet) Has(v string) bool {
	for _, x := range t.values {
		if x == v {
			return true
		}
	}
	return false
}

func (t TagSet) Len() int { return len(t.values) }

// Values returns a copy in insertion order.
func (t TagSet) Values() []string {
	return append([]string(nil), t.values...)
}
