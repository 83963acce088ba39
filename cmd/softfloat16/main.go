// Command softfloat16 is a TestFloat-style harness: it reads whitespace
// separated hex operand lines from stdin, applies one arithmetic operation
// using this package's bit-exact implementation, and echoes each line back
// with the expected-result field replaced by the value this package
// actually computed. It exists so the library's output can be diffed
// against a reference implementation's own test vectors line for line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	sf16 "github.com/hask-ward/softfloat16"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "softfloat16 TYPEIN_OP[_TYPEOUT]",
		Short: "Bit-exact binary16 arithmetic test harness",
		Long: "Reads hex-encoded operand lines from stdin, one test case per line, " +
			"and writes each line back out with the result field replaced by " +
			"what this package computed for that operation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeIn, op, typeOut, err := parseSelector(args[0])
			if err != nil {
				return err
			}
			return runHarness(os.Stdin, cmd.OutOrStdout(), typeIn, op, typeOut)
		},
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseSelector splits a selector such as "softfloat16_add" or
// "f32_to_softfloat16" into its input type, operation, and output type
// (which defaults to the input type when omitted).
func parseSelector(s string) (typeIn, op, typeOut string, err error) {
	parts := strings.Split(s, "_")
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("selector %q must be TYPEIN_OP[_TYPEOUT]", s)
	}
	typeIn = parts[0]
	op = parts[1]
	if len(parts) >= 3 {
		typeOut = parts[2]
	} else {
		typeOut = typeIn
	}
	if typeIn != "softfloat16" && typeIn != "f32" {
		return "", "", "", fmt.Errorf("unsupported input type %q", typeIn)
	}
	if typeOut != "softfloat16" && typeOut != "f32" {
		return "", "", "", fmt.Errorf("unsupported output type %q", typeOut)
	}
	return typeIn, op, typeOut, nil
}

// operand is a single hex-encoded test case value, tagged by which of the
// two supported wire types it holds.
type operand struct {
	f16   sf16.Float16
	f32   float32
	isF32 bool
}

func parseOperand(hexStr, typ string) (operand, error) {
	switch typ {
	case "softfloat16":
		v, err := strconv.ParseUint(hexStr, 16, 16)
		if err != nil {
			return operand{}, fmt.Errorf("parse %q as softfloat16: %w", hexStr, err)
		}
		return operand{f16: sf16.FromBits(uint16(v))}, nil
	case "f32":
		v, err := strconv.ParseUint(hexStr, 16, 32)
		if err != nil {
			return operand{}, fmt.Errorf("parse %q as f32: %w", hexStr, err)
		}
		return operand{f32: math.Float32frombits(uint32(v)), isF32: true}, nil
	default:
		return operand{}, fmt.Errorf("unsupported type %q", typ)
	}
}

func (o operand) toF16() sf16.Float16 {
	if o.isF32 {
		return sf16.FromF32(o.f32)
	}
	return o.f16
}

func formatResult(f sf16.Float16, typeOut string) string {
	switch typeOut {
	case "f32":
		return fmt.Sprintf("%08X", math.Float32bits(sf16.ToF32(f)))
	default:
		return fmt.Sprintf("%04X", sf16.ToBits(f))
	}
}

// runHarness drives the TestFloat wire protocol: each stdin line is a
// space-separated test case, an operand field per operand, an
// expected-result field (replaced with the computed result), and a flags
// field (passed through unchanged, along with any fields after it).
func runHarness(in io.Reader, out io.Writer, typeIn, op, typeOut string) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words := strings.Fields(line)

		echoed, err := evaluate(words, typeIn, op, typeOut)
		if err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
		fmt.Fprintln(out, strings.Join(echoed, " "))
	}
	return scanner.Err()
}

// evaluate computes one test case and returns the full output line's
// fields: the operand fields unchanged, the computed result in place of the
// expected-result field, and every trailing field (the flags column and
// anything after it) preserved verbatim.
func evaluate(words []string, typeIn, op, typeOut string) (line []string, err error) {
	numOperands, compute, err := operation(op)
	if err != nil {
		return nil, err
	}
	// +1 for the expected-result field; at least one trailing flags field
	// must remain.
	if len(words) < numOperands+2 {
		return nil, fmt.Errorf("expected at least %d fields, got %d", numOperands+2, len(words))
	}

	operands := make([]sf16.Float16, numOperands)
	for i := 0; i < numOperands; i++ {
		o, err := parseOperand(words[i], typeIn)
		if err != nil {
			return nil, err
		}
		operands[i] = o.toF16()
	}

	result := formatResult(compute(operands), typeOut)

	out := make([]string, 0, len(words))
	out = append(out, words[:numOperands]...)
	out = append(out, result)
	out = append(out, words[numOperands+1:]...)
	return out, nil
}

// operation maps a selector's operation name to its operand count and the
// function that computes its result.
func operation(op string) (numOperands int, compute func([]sf16.Float16) sf16.Float16, err error) {
	switch op {
	case "add":
		return 2, func(o []sf16.Float16) sf16.Float16 { return sf16.Add(o[0], o[1]) }, nil
	case "sub":
		return 2, func(o []sf16.Float16) sf16.Float16 { return sf16.Sub(o[0], o[1]) }, nil
	case "mul":
		return 2, func(o []sf16.Float16) sf16.Float16 { return sf16.Mul(o[0], o[1]) }, nil
	case "div":
		return 2, func(o []sf16.Float16) sf16.Float16 { return sf16.Div(o[0], o[1]) }, nil
	case "fma":
		return 3, func(o []sf16.Float16) sf16.Float16 { return sf16.MulAdd(o[0], o[1], o[2]) }, nil
	case "round":
		return 1, func(o []sf16.Float16) sf16.Float16 { return sf16.RoundTiesEven(o[0]) }, nil
	case "to":
		return 1, func(o []sf16.Float16) sf16.Float16 { return o[0] }, nil
	default:
		return 0, nil, fmt.Errorf("unsupported operation %q", op)
	}
}
