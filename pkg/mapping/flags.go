package mapping

// Flags holds the small set of build-time toggles a mapping table's
// entries can set via a "!flagName" line. Currently only one is
// recognized; unrecognized flag names are reported as an UnknownFlagError
// and do not abort the build.
type Flags struct {
	// ZerosUnmapped, when set, makes a map/unmap query whose sole key is
	// verse 0 and that misses the compiled index return an empty passage
	// rather than falling back to a best-effort OSIS translation. A verse-0
	// key that the table does map still returns its mapping.
	ZerosUnmapped bool
}

// Apply sets the flag named by name. It reports UnknownFlagError for any
// name other than "zerosUnmapped".
func (f *Flags) Apply(name string) error {
	switch name {
	case "zerosUnmapped":
		f.ZerosUnmapped = true
		return nil
	default:
		return &UnknownFlagError{Name: name}
	}
}
