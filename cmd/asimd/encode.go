package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tetratelabs/asimd/asm"
	"github.com/tetratelabs/asimd/asm/arm64"
)

// program is the YAML document read by the encode command:
//
//	instructions:
//	  - op: AddVVV
//	    args: [full, s, v1, v2, v3]
//	  - op: Ld1MultipleV
//	    args: [full, s, v0, "[x0], #16"]
type program struct {
	Instructions []instruction `yaml:"instructions"`
}

type instruction struct {
	// Op is the Assembler method, matched without regard to case.
	Op   string      `yaml:"op"`
	Args []yaml.Node `yaml:"args"`
}

func readProgram(r io.Reader) (*program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p program
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("invalid program: %w", err)
	}
	return &p, nil
}

var assemblerType = reflect.TypeOf((*arm64.Assembler)(nil))

// lookupOperation returns the Assembler method named name. Only methods
// emitting an instruction, i.e. without results, are operations.
func lookupOperation(name string) (reflect.Method, error) {
	for i := 0; i < assemblerType.NumMethod(); i++ {
		m := assemblerType.Method(i)
		if strings.EqualFold(m.Name, name) && m.Type.NumOut() == 0 {
			return m, nil
		}
	}
	return reflect.Method{}, fmt.Errorf("unknown operation %s", name)
}

var (
	registerType    = reflect.TypeOf(asm.Register(0))
	asimdSizeType   = reflect.TypeOf(arm64.ASIMDSize(0))
	elementSizeType = reflect.TypeOf(arm64.ElementSize(0))
	addressType     = reflect.TypeOf(arm64.AddressOperand{})
	intType         = reflect.TypeOf(0)
	uint64Type      = reflect.TypeOf(uint64(0))
)

func parseASIMDSize(s string) (arm64.ASIMDSize, error) {
	switch strings.ToLower(s) {
	case "full", "fullreg", "q", "128":
		return arm64.ASIMDSizeFullReg, nil
	case "half", "halfreg", "d", "64":
		return arm64.ASIMDSizeHalfReg, nil
	}
	return 0, fmt.Errorf("%w: %s", arm64.ErrInvalidASIMDSize, s)
}

func parseElementSize(s string) (arm64.ElementSize, error) {
	switch strings.ToLower(s) {
	case "b", "byte":
		return arm64.ElementSizeByte, nil
	case "h", "halfword":
		return arm64.ElementSizeHalfWord, nil
	case "s", "word":
		return arm64.ElementSizeWord, nil
	case "d", "doubleword":
		return arm64.ElementSizeDoubleWord, nil
	}
	if bits, err := strconv.Atoi(s); err == nil {
		return arm64.ElementSizeFromBits(bits)
	}
	return 0, fmt.Errorf("%w: %s", arm64.ErrInvalidElementSize, s)
}

// convertArg converts s to a value of the parameter type t.
func convertArg(t reflect.Type, s string) (reflect.Value, error) {
	var v any
	var err error
	switch t {
	case registerType:
		v, err = arm64.RegisterByName(s)
	case asimdSizeType:
		v, err = parseASIMDSize(s)
	case elementSizeType:
		v, err = parseElementSize(s)
	case addressType:
		v, err = arm64.ParseAddressOperand(s)
	case intType:
		var i int64
		i, err = strconv.ParseInt(s, 0, 0)
		v = int(i)
	case uint64Type:
		v, err = parseValue(s)
	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", t)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(v), nil
}

// encodeOne appends the instruction to a, converting its arguments to the
// parameters of the operation.
func encodeOne(a *arm64.Assembler, inst instruction) (err error) {
	m, err := lookupOperation(inst.Op)
	if err != nil {
		return err
	}
	if want := m.Type.NumIn() - 1; want != len(inst.Args) {
		return fmt.Errorf("%s takes %d arguments but got %d", m.Name, want, len(inst.Args))
	}

	in := make([]reflect.Value, 0, m.Type.NumIn())
	in = append(in, reflect.ValueOf(a))
	for i, arg := range inst.Args {
		if arg.Kind != yaml.ScalarNode {
			return fmt.Errorf("%s argument %d must be a scalar", m.Name, i)
		}
		v, err := convertArg(m.Type.In(i+1), arg.Value)
		if err != nil {
			return fmt.Errorf("%s argument %d: %w", m.Name, i, err)
		}
		in = append(in, v)
	}

	defer arm64.RecoverPrecondition(&err)
	m.Func.Call(in)
	return nil
}

// encodeProgram returns the machine code of p.
func encodeProgram(p *program) ([]byte, error) {
	code := asm.NewCodeSegment(nil)
	buf := code.Next()
	a := arm64.NewAssembler(buf)
	for i, inst := range p.Instructions {
		if err := encodeOne(a, inst); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func getEncodeCmd(gs *globalState) *cobra.Command {
	var (
		disasm bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Encode a YAML instruction program",
		Long: `Encode the instructions listed in FILE, or standard input when FILE is -,
and print one hex word per instruction.

Each entry names an Assembler operation and its arguments in order: register
sizes (full, half), lane sizes (b, h, s, d), registers (v0, x1, sp), integers
and addresses ("[x0]", "[x0], x1", "[x0], #16").`,
		Example: `  asimd encode prog.yaml
  asimd encode --disasm --output prog.bin prog.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			p, err := readProgram(r)
			if err != nil {
				return err
			}
			gs.logger.Debugf("encoding %d instructions", len(p.Instructions))
			code, err := encodeProgram(p)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, code, 0o644); err != nil {
					return err
				}
				gs.logger.Debugf("wrote %d bytes to %s", len(code), output)
			}

			if disasm {
				lines, err := arm64.Disassemble(code)
				if err != nil {
					return err
				}
				for _, line := range lines {
					fmt.Fprintln(gs.stdOut, line)
				}
				return nil
			}
			for i := 0; i < len(code); i += 4 {
				fmt.Fprintf(gs.stdOut, "%08x\n", uint32(code[i])|uint32(code[i+1])<<8|uint32(code[i+2])<<16|uint32(code[i+3])<<24)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&disasm, "disasm", false, "print a disassembly listing instead of words")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the little-endian code to this file")
	return cmd
}
