package model

// Version is the declared version of a spec file. The zero value means the
// spec file does not exist yet.
type Version string

// Defined reports whether the version was actually queried from a spec file
func (v Version) Defined() bool {
	return v != ""
}

func (v Version) String() string {
	return string(v)
}
