package cli

// boolArg is a go-flags value type implementing the CLI's boolean
// grammar: a value is false iff its first character is one of F f N n 0;
// any other value, including an empty string, is true.
type boolArg bool

// UnmarshalFlag implements flags.Unmarshaler.
func (b *boolArg) UnmarshalFlag(value string) error {
	if value == "" {
		*b = true
		return nil
	}
	switch rune(value[0]) {
	case 'F', 'f', 'N', 'n', '0':
		*b = false
	default:
		*b = true
	}
	return nil
}

func (b boolArg) bool() bool { return bool(b) }
