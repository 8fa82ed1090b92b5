package arm64

import "fmt"

// PreconditionError is the panic value of an Assembler operation called with
// operands the instruction cannot encode. Such a call is a bug in the code
// generator, so the Assembler panics rather than returning an error from every
// operation. Use RecoverPrecondition to turn it back into an error.
//
// The checks are compiled out with the asimd_nochecks build tag, in which
// case invalid operands produce an unspecified word.
type PreconditionError struct {
	// Op is the Assembler method, e.g. "AddVVV".
	Op string
	// Offset is the sink position the instruction would have been written at.
	Offset int
	Msg    string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s at offset %#x: %s", e.Op, e.Offset, e.Msg)
}

// RecoverPrecondition stores a recovered *PreconditionError into errp. Other
// panics are propagated. It must be deferred directly:
//
//	defer arm64.RecoverPrecondition(&err)
func RecoverPrecondition(errp *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(*PreconditionError); ok {
			*errp = pe
			return
		}
		panic(r)
	}
}

// ChecksEnabled reports whether operand checks are compiled in.
func ChecksEnabled() bool {
	return checksEnabled
}
