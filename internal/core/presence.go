package core

// Roster reflects the online-user list as last fetched from the server. It
// is refreshed by full pulls, never patched incrementally, and always
// excludes the local identity from the rendered set.
type Roster struct {
	self  string
	users []string
}

// NewRoster constructs an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// SetSelf records the local identity so it can be filtered out of updates.
func (r *Roster) SetSelf(name string) {
	r.self = name
}

// Update replaces the roster with the fetched list, dropping the local
// identity. Server order is preserved.
func (r *Roster) Update(users []string) {
	filtered := make([]string, 0, len(users))
	for _, u := range users {
		if u == r.self {
			continue
		}
		filtered = append(filtered, u)
	}
	r.users = filtered
}

// Users returns the current roster entries.
func (r *Roster) Users() []string {
	out := make([]string, len(r.users))
	copy(out, r.users)
	return out
}

// Contains reports whether the named user is currently online.
func (r *Roster) Contains(name string) bool {
	for _, u := range r.users {
		if u == name {
			return true
		}
	}
	return false
}

// Reset clears the roster and the local identity.
func (r *Roster) Reset() {
	r.self = ""
	r.users = nil
}
