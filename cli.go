package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pngstash/models"
	"pngstash/pngmeta"

	"github.com/dustin/go-humanize"
)

// describe turns a pngmeta error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, pngmeta.ErrNotPNG):
		return "not a PNG file (signature mismatch)"
	case errors.Is(err, pngmeta.ErrMalformedChunk):
		return "malformed chunk, " + err.Error()
	case errors.Is(err, pngmeta.ErrTruncatedChain):
		return "chunk chain ends before IEND, file is truncated"
	case errors.Is(err, pngmeta.ErrPayloadTooLarge):
		return fmt.Sprintf("payload too large, maximum allowed payload is %d bytes", int64(pngmeta.MaxChunkLength))
	case errors.Is(err, pngmeta.ErrPayloadNotFound):
		return "no embedded payload found (no tEXt chunk right before IEND)"
	default:
		return err.Error()
	}
}

func fail(stage, file string, err error) int {
	logger.Error("operation failed", "stage", stage, "file", file, "error", err)
	fmt.Fprintf(os.Stderr, "Error: %s '%s': %s\n", stage, file, describe(err))
	if errors.Is(err, pngmeta.ErrPayloadNotFound) {
		return exitNotFound
	}
	return exitError
}

func record(op *models.Operation) {
	if store == nil {
		return
	}
	if _, err := store.RecordOperation(op); err != nil {
		logger.Warn("failed to record operation", "kind", op.Kind, "source", op.Source, "error", err)
	}
}

func readInput(w io.Writer, stage, fname string) ([]byte, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Read %s from file '%s'.\n", humanize.Bytes(uint64(len(data))), fname)
	logger.Debug("read input", "stage", stage, "file", fname, "size", len(data))
	return data, nil
}

func runInject(args []string, w io.Writer) int {
	fs := flag.NewFlagSet("inject", flag.ContinueOnError)
	output := fs.String("o", cfg.OutputPath, "file to write the new PNG to")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inject [-o output.png] <carrier.png> <payload>")
		return exitError
	}
	carrierPath, payloadPath := fs.Arg(0), fs.Arg(1)
	carrier, err := readInput(w, "read carrier", carrierPath)
	if err != nil {
		return fail("read carrier", carrierPath, err)
	}
	if err := pngmeta.CheckSignature(carrier); err != nil {
		return fail("read carrier", carrierPath, err)
	}
	// refuse oversized payloads before loading them
	if st, err := os.Stat(payloadPath); err == nil && st.Size() > pngmeta.MaxChunkLength {
		return fail("read payload", payloadPath,
			fmt.Errorf("%w: %d bytes", pngmeta.ErrPayloadTooLarge, st.Size()))
	}
	payload, err := readInput(w, "read payload", payloadPath)
	if err != nil {
		return fail("read payload", payloadPath, err)
	}
	out, err := pngmeta.Inject(carrier, payload)
	if err != nil {
		return fail("inject", carrierPath, err)
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		return fail("write output", *output, err)
	}
	// read back what actually landed on disk
	written, err := os.ReadFile(*output)
	if err != nil {
		return fail("verify output", *output, err)
	}
	report, err := pngmeta.Inspect(written)
	if err != nil {
		return fail("verify output", *output, err)
	}
	stats := models.InjectStats{
		CarrierSize: len(carrier),
		PayloadSize: len(payload),
		OutputSize:  len(written),
		Output:      report,
	}
	printInjectStats(w, *output, carrierPath, stats)
	logger.Info("payload injected", "carrier", carrierPath, "output", *output,
		"payload_size", len(payload), "output_size", len(written))
	record(&models.Operation{
		Kind:        models.OpInject,
		Source:      carrierPath,
		Output:      *output,
		PayloadSize: int64(len(payload)),
		OutputSize:  int64(len(written)),
		Chunks:      report.TotalChunks(),
		ValidChunks: report.ValidChunks,
	})
	return exitOK
}

func runExtract(args []string, w io.Writer) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	markExec := fs.Bool("x", cfg.MarkExecutable, "mark the extracted file executable")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: extract [-x] <carrier.png> <output>")
		return exitError
	}
	carrierPath, outputPath := fs.Arg(0), fs.Arg(1)
	carrier, err := readInput(w, "read carrier", carrierPath)
	if err != nil {
		return fail("read carrier", carrierPath, err)
	}
	payload, err := pngmeta.Extract(carrier)
	if err != nil {
		return fail("extract", carrierPath, err)
	}
	if err := os.WriteFile(outputPath, payload, 0644); err != nil {
		return fail("write output", outputPath, err)
	}
	if *markExec {
		if err := markExecutable(outputPath); err != nil {
			// the payload is already written, so this is not fatal
			logger.Warn("failed to mark output executable", "file", outputPath, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: could not mark '%s' executable: %v\n", outputPath, err)
		}
	}
	stats := models.ExtractStats{CarrierSize: len(carrier), PayloadSize: len(payload)}
	printExtractStats(w, outputPath, stats)
	logger.Info("payload extracted", "carrier", carrierPath, "output", outputPath, "payload_size", len(payload))
	record(&models.Operation{
		Kind:        models.OpExtract,
		Source:      carrierPath,
		Output:      outputPath,
		PayloadSize: int64(len(payload)),
		OutputSize:  int64(len(payload)),
	})
	return exitOK
}

func markExecutable(fname string) error {
	st, err := os.Stat(fname)
	if err != nil {
		return err
	}
	return os.Chmod(fname, st.Mode()|0111)
}

func runInspect(args []string, w io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	useTUI := fs.Bool("tui", false, "browse the chunks in a terminal table")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-tui] <file.png>")
		return exitError
	}
	fname := fs.Arg(0)
	data, err := os.ReadFile(fname)
	if err != nil {
		return fail("read input", fname, err)
	}
	report, err := pngmeta.Inspect(data)
	if err != nil {
		return fail("inspect", fname, err)
	}
	if *useTUI {
		if err := showInspector(fname, report); err != nil {
			return fail("tui", fname, err)
		}
		return exitOK
	}
	printChainReport(w, report)
	return exitOK
}

func runHistory(args []string, w io.Writer) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("n", 20, "number of operations to show, 0 for all")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: history is disabled, set DBPATH in the config")
		return exitError
	}
	ops, err := store.ListOperations(*limit)
	if err != nil {
		return fail("list history", cfg.DBPATH, err)
	}
	printHistory(w, ops)
	return exitOK
}

func printChunk(w io.Writer, c models.ChunkReport) {
	fmt.Fprintf(w, "chunk.length = %d bytes\n", c.Length)
	fmt.Fprintf(w, "  chunk.type = %s (%s)\n", c.Type, c.Class())
	fmt.Fprintf(w, "   chunk.crc = %d (%s)\n\n", c.StoredCRC, c.Status())
}

func printChainReport(w io.Writer, report *models.ChainReport) {
	for _, c := range report.Chunks {
		printChunk(w, c)
	}
	fmt.Fprintf(w, "%d of %d chunks (%.1f%%) are valid.\n",
		report.ValidChunks, report.TotalChunks(), report.ValidPercent())
}

func printInjectStats(w io.Writer, output, carrierPath string, s models.InjectStats) {
	fmt.Fprintf(w, "\n***** Injection complete. Information on program output: *****\n\n")
	fmt.Fprintf(w, "Output filename: %s\n", output)
	fmt.Fprintf(w, "Output filesize: %s (%.1f%% larger than original '%s')\n\n",
		humanize.Bytes(uint64(s.OutputSize)), s.GrowthPercent(), carrierPath)
	if s.Output != nil {
		printChainReport(w, s.Output)
	}
}

func printExtractStats(w io.Writer, output string, s models.ExtractStats) {
	fmt.Fprintf(w, "\n***** Extraction complete. Information on extracted payload: *****\n\n")
	fmt.Fprintf(w, "Output filename: %s\n", output)
	fmt.Fprintf(w, "Output filesize: %s (%.1f%% of PNG carrier file)\n\n",
		humanize.Bytes(uint64(s.PayloadSize)), s.SharePercent())
}

func printHistory(w io.Writer, ops []models.Operation) {
	if len(ops) == 0 {
		fmt.Fprintln(w, "no operations recorded")
		return
	}
	for _, op := range ops {
		fmt.Fprintf(w, "%4d  %-7s  %-24s -> %-24s  payload %-9s  %s\n",
			op.ID, op.Kind, op.Source, op.Output,
			humanize.Bytes(uint64(op.PayloadSize)), humanize.Time(op.CreatedAt))
	}
}
