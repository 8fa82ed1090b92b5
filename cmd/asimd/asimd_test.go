package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testProgram = `instructions:
  - op: AddVVV
    args: [full, s, v1, v2, v3]
  - op: movivi
    args: [full, v1, 0xffffffffffffffff]
  - op: Ld1MultipleV
    args: [full, s, v0, "[x0], #16"]
  - op: XarVVVI
    args: [v1, v2, v3, 10]
`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeProgram(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "prog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, []string{"--help"})
	require.Equal(t, 0, exitCode)
	for _, sub := range []string{"imm", "table", "encode", "disasm", "version"} {
		require.Contains(t, stdOut, sub)
	}

	exitCode, _, stdErr := runMain(t, []string{"nope"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "unknown command")
}

func TestImm(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expected   []string
		unexpected []string
	}{
		{
			name: "float and byte pattern",
			args: []string{"imm", "0x3f8000003f800000"},
			expected: []string{
				"0x3f8000003f800000\n",
				"  MOVI   0x0003f200\n",
				"  MVNI   not encodable\n",
				"  FMOVSP 0x0003f200\n",
				"  FMOVDP not encodable\n",
				"  slots: cmode=1111 op=0 imm8=0x70\n",
			},
		},
		{
			name: "one family",
			args: []string{"imm", "--op", "orr", "0xffffffffffffffff"},
			expected: []string{
				"0xffffffffffffffff\n",
				"  ORR    not encodable\n",
				"  slots: cmode=1110 op=0 imm8=0xff, cmode=1110 op=1 imm8=0xff\n",
			},
			unexpected: []string{"MOVI"},
		},
		{
			name:       "not encodable",
			args:       []string{"imm", "0x0123_4567_89ab_cdef"},
			expected:   []string{"0x0123456789abcdef\n", "  BIC    not encodable\n"},
			unexpected: []string{"slots"},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			exitCode, stdOut, stdErr := runMain(t, tc.args)
			require.Equal(t, 0, exitCode, stdErr)
			for _, e := range tc.expected {
				require.Contains(t, stdOut, e)
			}
			for _, e := range tc.unexpected {
				require.NotContains(t, stdOut, e)
			}
		})
	}
}

func TestImm_errors(t *testing.T) {
	exitCode, _, stdErr := runMain(t, []string{"imm", "zz"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "invalid value zz")

	exitCode, _, stdErr = runMain(t, []string{"imm", "--op", "fmov", "1"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "unknown immediate op")

	exitCode, _, _ = runMain(t, []string{"imm"})
	require.Equal(t, 1, exitCode)
}

func TestTable(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, []string{"table"})
	require.Equal(t, 0, exitCode)
	require.Equal(t, "entries: 3046\n", stdOut)

	exitCode, stdOut, _ = runMain(t, []string{"table", "--dump", "--op", "fmovdp", "--limit", "2"})
	require.Equal(t, 0, exitCode)
	require.Equal(t, `entries: 3046
0x3fc0000000000000  cmode=1111 op=1 imm8=0x40
0x3fc1000000000000  cmode=1111 op=1 imm8=0x41
`, stdOut)

	exitCode, stdOut, _ = runMain(t, []string{"table", "--dump"})
	require.Equal(t, 0, exitCode)
	require.Equal(t, 3047, strings.Count(stdOut, "\n"))
}

func TestEncode(t *testing.T) {
	path := writeProgram(t, testProgram)

	t.Run("words", func(t *testing.T) {
		exitCode, stdOut, stdErr := runMain(t, []string{"encode", path})
		require.Equal(t, 0, exitCode, stdErr)
		require.Equal(t, "4ea38441\n4f07e7e1\n4cdf7800\nce832841\n", stdOut)
	})

	t.Run("output and listing", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "prog.bin")
		exitCode, stdOut, stdErr := runMain(t, []string{"encode", "--disasm", "-o", out, path})
		require.Equal(t, 0, exitCode, stdErr)

		lines := strings.Split(strings.TrimSuffix(stdOut, "\n"), "\n")
		require.Equal(t, 4, len(lines))
		require.Contains(t, lines[3], ".word 0xce832841")

		code, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, []byte{
			0x41, 0x84, 0xa3, 0x4e,
			0xe1, 0xe7, 0x07, 0x4f,
			0x00, 0x78, 0xdf, 0x4c,
			0x41, 0x28, 0x83, 0xce,
		}, code)
	})
}

func TestEncode_errors(t *testing.T) {
	tests := []struct {
		name, program, expectedErr string
	}{
		{
			name: "precondition",
			program: `instructions:
  - op: AddVVV
    args: [full, s, v1, v2, v3]
  - op: AddpVVV
    args: [half, d, v0, v1, v2]
`,
			expectedErr: "instruction 1: AddpVVV at offset 0x4: must use multiple lanes: HalfReg D",
		},
		{
			name:        "unknown operation",
			program:     "instructions:\n  - op: FooVV\n",
			expectedErr: "instruction 0: unknown operation FooVV",
		},
		{
			name:        "argument count",
			program:     "instructions:\n  - op: AddVVV\n    args: [full]\n",
			expectedErr: "instruction 0: AddVVV takes 5 arguments but got 1",
		},
		{
			name:        "bad register",
			program:     "instructions:\n  - op: NegVV\n    args: [full, b, v0, v32]\n",
			expectedErr: "instruction 0: NegVV argument 3",
		},
		{
			name:        "nested argument",
			program:     "instructions:\n  - op: NegVV\n    args: [full, b, v0, [v1]]\n",
			expectedErr: "instruction 0: NegVV argument 3 must be a scalar",
		},
		{
			name:        "unknown field",
			program:     "instructions:\n  - op: NegVV\n    arguments: []\n",
			expectedErr: "invalid program",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			exitCode, stdOut, stdErr := runMain(t, []string{"encode", writeProgram(t, tc.program)})
			require.Equal(t, 1, exitCode)
			require.Equal(t, "", stdOut)
			require.Contains(t, stdErr, tc.expectedErr)
		})
	}

	exitCode, _, stdErr := runMain(t, []string{"encode", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "no such file or directory")
}

func TestDisasm(t *testing.T) {
	exitCode, stdOut, stdErr := runMain(t, []string{"disasm", "4ea38441", "0xCE832841"})
	require.Equal(t, 0, exitCode, stdErr)
	lines := strings.Split(strings.TrimSuffix(stdOut, "\n"), "\n")
	require.Equal(t, 2, len(lines))
	require.Contains(t, lines[0], "add")
	require.Contains(t, lines[1], ".word 0xce832841")

	exitCode, _, stdErr = runMain(t, []string{"disasm", "zz"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "invalid instruction word zz")
}

func TestVersion(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, []string{"version"})
	require.Equal(t, 0, exitCode)
	require.NotEmpty(t, strings.TrimSpace(stdOut))
}

func TestLogging(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("ASIMD_LOG_FORMAT", "json")
		exitCode, _, stdErr := runMain(t, []string{"imm", "zz"})
		require.Equal(t, 1, exitCode)
		require.Contains(t, stdErr, `"level":"error"`)
	})

	t.Run("flag over environment", func(t *testing.T) {
		t.Setenv("ASIMD_LOG_FORMAT", "json")
		exitCode, _, stdErr := runMain(t, []string{"--log-format", "raw", "imm", "zz"})
		require.Equal(t, 1, exitCode)
		require.Equal(t, "invalid value zz\n", stdErr)
	})

	t.Run("verbose", func(t *testing.T) {
		t.Setenv("ASIMD_VERBOSE", "true")
		exitCode, _, stdErr := runMain(t, []string{"imm", "0xff"})
		require.Equal(t, 0, exitCode)
		require.Contains(t, stdErr, "level=debug")
	})

	t.Run("unsupported format", func(t *testing.T) {
		exitCode, _, stdErr := runMain(t, []string{"--log-format", "xml", "version"})
		require.Equal(t, 1, exitCode)
		require.Contains(t, stdErr, "unsupported log format xml")
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv("ASIMD_NO_COLOR", "maybe")
		exitCode, _, stdErr := runMain(t, []string{"version"})
		require.Equal(t, 1, exitCode)
		require.Contains(t, stdErr, "invalid environment")
	})
}

func runMain(t *testing.T, args []string) (int, string, string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
	})
	os.Args = append([]string{"asimd"}, args...)

	var exitCode int
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	var exited bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				exited = true
			}
		}()
		doMain(stdOut, stdErr, func(code int) {
			exitCode = code
			panic(code)
		})
	}()

	require.True(t, exited)

	return exitCode, stdOut.String(), stdErr.String()
}
