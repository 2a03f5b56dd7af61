package models

// UIDSet is a set of user IDs stored as a JSON array column, mirroring the
// document layout the likes live in. Membership decides the "liked" state.
type UIDSet []uint

// Contains reports set membership.
func (s UIDSet) Contains(uid uint) bool {
	for _, id := range s {
		if id == uid {
			return true
		}
	}
	return false
}

// Toggle flips uid's membership and returns the resulting set. Applying it
// twice with the same uid returns an equivalent set.
func (s UIDSet) Toggle(uid uint) UIDSet {
	if s.Contains(uid) {
		out := make(UIDSet, 0, len(s)-1)
		for _, id := range s {
			if id != uid {
				out = append(out, id)
			}
		}
		return out
	}
	out := make(UIDSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, uid)
}

// StringList is a JSON array column of strings (tags, image URLs).
type StringList []string

// Contains reports whether v is in the list.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}
