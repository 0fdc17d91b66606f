package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/etru/helpers"
	"github.com/etru/helpers/base7"
	"github.com/etru/helpers/internal/config"
	"github.com/etru/helpers/numtheory"
)

// parseInt64 reads a machine integer argument.
func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &helpers.ParseError{Input: s, Pos: -1, Reason: "not a 64-bit decimal integer"}
	}
	return n, nil
}

func newEgcdCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "egcd A B",
		Short: "Print g, x, y with a*x + b*y = g = gcd(a, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt64(args[0])
			if err != nil {
				return err
			}
			b, err := parseInt64(args[1])
			if err != nil {
				return err
			}

			g, x, y, err := numtheory.ExtendedGCD(a, b)
			if err != nil {
				return fmt.Errorf("egcd %d %d: %w", a, b, err)
			}
			logger.Debug("extended gcd", zap.Int64("a", a), zap.Int64("b", b), zap.Int64("g", g))

			line := fmt.Sprintf("%d %d %d", g, x, y)
			return render(cmd.OutOrStdout(), opts.output, []string{line}, bezout{A: a, B: b, G: g, X: x, Y: y})
		},
	}
}

func newPrimeCmd(opts *options) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "prime N...",
		Short: "Report whether each N is prime",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			test := numtheory.IsPrime
			if legacy || opts.cfg.PrimePolicy == config.PolicyLegacy {
				test = numtheory.IsPrimeLegacy
			}

			results, err := mapAll(cmd.Context(), args, opts.workers, func(s string) (primality, error) {
				n, err := parseInt64(s)
				if err != nil {
					return primality{}, err
				}
				return primality{Input: s, Prime: test(n)}, nil
			})
			if err != nil {
				return err
			}
			logger.Debug("primality checked", zap.Int("count", len(results)), zap.Bool("legacy", legacy))

			lines := make([]string, len(results))
			for i, r := range results {
				lines[i] = fmt.Sprintf("%s %t", r.Input, r.Prime)
			}
			return render(cmd.OutOrStdout(), opts.output, lines, results)
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Treat every n < 4 as prime, like the original helpers")
	return cmd
}

func newEisensteinPrimeCmd(opts *options) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "eprime X Y",
		Short: "Report whether x + yω has a prime norm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt64(args[0])
			if err != nil {
				return err
			}
			y, err := parseInt64(args[1])
			if err != nil {
				return err
			}

			test := numtheory.IsEisensteinPrime
			if legacy || opts.cfg.PrimePolicy == config.PolicyLegacy {
				test = numtheory.IsEisensteinPrimeLegacy
			}
			prime, err := test(x, y)
			if err != nil {
				return err
			}
			logger.Debug("eisenstein primality checked", zap.Int64("x", x), zap.Int64("y", y), zap.Bool("legacy", legacy))

			r := primality{Input: base7.Element{X: x, Y: y}.String(), Prime: prime}
			return render(cmd.OutOrStdout(), opts.output, []string{fmt.Sprintf("%s %t", r.Input, r.Prime)}, r)
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Test the norm like the original helpers, where every n < 4 is prime")
	return cmd
}

func newConvertCmd(opts *options, use, short, direction string, fn func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := mapAll(cmd.Context(), args, opts.workers, func(s string) (conversion, error) {
				out, err := fn(s)
				if err != nil {
					return conversion{}, err
				}
				return conversion{Input: s, Output: out}, nil
			})
			if err != nil {
				return err
			}
			logger.Debug("converted", zap.String("direction", direction), zap.Int("count", len(results)))
			return render(cmd.OutOrStdout(), opts.output, conversionLines(results), results)
		},
	}
}

func newToBase7Cmd(opts *options) *cobra.Command {
	return newConvertCmd(opts, "to7 DECIMAL...", "Convert decimal integers to base 7", "to7", base7.ToBase7)
}

func newFromBase7Cmd(opts *options) *cobra.Command {
	return newConvertCmd(opts, "from7 BASE7...", "Convert base 7 integers to decimal", "from7", base7.FromBase7)
}

func newEncodeCmd(opts *options) *cobra.Command {
	maxDigits := -1
	var ring bool

	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Encode a text message as base 7 digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := maxDigits
			if limit < 0 {
				limit = opts.cfg.MaxDigits
			}

			text := strings.Join(args, " ")
			enc, err := base7.EncodeMessage(text, limit)
			if err != nil {
				return err
			}
			logger.Debug("message encoded", zap.Int("bytes", len(text)), zap.Int("digits", len(enc)))

			if ring {
				es, err := base7.ToRing(enc)
				if err != nil {
					return err
				}
				lines := make([]string, len(es))
				for i, e := range es {
					lines[i] = e.String()
				}
				return render(cmd.OutOrStdout(), opts.output, []string{strings.Join(lines, " ")}, es)
			}

			c := conversion{Input: text, Output: enc}
			return render(cmd.OutOrStdout(), opts.output, []string{enc}, c)
		},
	}
	cmd.Flags().IntVar(&maxDigits, "max-digits", -1, "Fail when the encoding exceeds this many digits, 0 for no limit (or set ETRU_MAX_DIGITS)")
	cmd.Flags().BoolVar(&ring, "ring", false, "Print the R_p element of each digit instead of the digits")
	return cmd
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode DIGITS",
		Short: "Decode base 7 digits back into a text message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := base7.DecodeMessage(args[0])
			if err != nil {
				return err
			}
			logger.Debug("message decoded", zap.Int("digits", len(args[0])), zap.Int("bytes", len(text)))

			c := conversion{Input: args[0], Output: text}
			return render(cmd.OutOrStdout(), opts.output, []string{text}, c)
		},
	}
}
