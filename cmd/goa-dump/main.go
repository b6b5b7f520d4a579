package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/goalog"
	"github.com/arloliu/goalog/compress"
	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/parser"
)

type dumpOptions struct {
	hexInput    bool
	compression string
	samples     bool
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "goa-dump [file|-]",
		Short: "Decode Cressi Goa dive records",
		Long: "goa-dump decodes a dive record downloaded from a Cressi Goa family dive computer " +
			"and prints its summary fields and, optionally, its sample stream.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runDump(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.hexInput, "hex", false, "input is hex text instead of raw bytes")
	flags.StringVar(&opts.compression, "compression", "", "dump compression: none, zstd, s2 or lz4 (default: from file extension)")
	flags.BoolVar(&opts.samples, "samples", false, "print the sample stream")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runDump(ctx context.Context, stdin io.Reader, out io.Writer, path string, opts *dumpOptions) error {
	data, err := readRecord(stdin, path, opts)
	if err != nil {
		return err
	}

	logger := logrus.WithField("input", path)
	p, err := goalog.NewParser(data, parser.WithLogger(logger))
	if err != nil {
		return err
	}

	printSummary(out, p)

	if !opts.samples {
		return nil
	}

	for typ, v := range p.Samples() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(out, formatSample(typ, v))
	}

	return nil
}

func readRecord(stdin io.Reader, path string, opts *dumpOptions) ([]byte, error) {
	ct := format.CompressionNone
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
		ct = compress.DetectCompression(path)
	}

	if opts.compression != "" {
		parsed, err := compress.ParseCompressionType(opts.compression)
		if err != nil {
			return nil, err
		}
		ct = parsed
	}

	if opts.hexInput {
		text, err := io.ReadAll(io.LimitReader(r, 2*compress.MaxDecompressedSize))
		if err != nil {
			return nil, err
		}

		raw, err := hex.DecodeString(strings.Join(strings.Fields(string(text)), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		r = bytes.NewReader(raw)
	}

	logrus.WithFields(logrus.Fields{
		"input":       path,
		"compression": ct.String(),
		"hex":         opts.hexInput,
	}).Debug("loading dive record")

	return goalog.LoadRecord(r, ct)
}

func printSummary(out io.Writer, p *parser.Parser) {
	fmt.Fprintf(out, "family:        %s\n", p.Family())
	fmt.Fprintf(out, "mode:          %s\n", p.Context().Mode)
	fmt.Fprintf(out, "fingerprint:   %016x\n", p.Fingerprint())

	fields := []struct {
		name string
		ft   format.FieldType
	}{
		{"datetime", format.FieldDatetime},
		{"dive time", format.FieldDiveTime},
		{"max depth", format.FieldMaxDepth},
		{"avg depth", format.FieldAvgDepth},
		{"min temp", format.FieldMinTemperature},
		{"atmospheric", format.FieldAtmosphericPressure},
		{"gas mixes", format.FieldGasMixCount},
		{"dive mode", format.FieldDiveMode},
	}

	for _, f := range fields {
		v, err := p.Field(f.ft, 0)
		fmt.Fprintf(out, "%-14s %s\n", f.name+":", formatField(v, err))
	}

	for i := range p.GasMixCount() {
		mix, err := p.GasMix(i)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "gas mix %d:     O2 %.0f%% N2 %.0f%%\n", i, mix.Oxygen*100, mix.Nitrogen*100)
	}
}

func formatField(v any, err error) string {
	if errors.Is(err, errs.ErrUnsupported) {
		return "n/a"
	}
	if err != nil {
		return "error: " + err.Error()
	}

	switch value := v.(type) {
	case parser.Datetime:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", value.Year, value.Month, value.Day, value.Hour, value.Minute)
	case uint32:
		return fmt.Sprintf("%d s", value)
	case float64:
		return fmt.Sprintf("%.3f", value)
	default:
		return fmt.Sprint(value)
	}
}

func formatSample(typ format.SampleType, v parser.SampleValue) string {
	switch typ {
	case format.SampleTime:
		return fmt.Sprintf("time %d ms", v.Time)
	case format.SampleDepth:
		return fmt.Sprintf("  depth %.1f m", v.Depth)
	case format.SampleTemperature:
		return fmt.Sprintf("  temperature %.1f C", v.Temperature)
	case format.SampleGasMix:
		return fmt.Sprintf("  gas mix %d", v.GasMix)
	default:
		return fmt.Sprintf("  %s", typ)
	}
}
