package workerpool

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.tmthrgd.dev/audiomirror/internal/codec"
	"go.tmthrgd.dev/audiomirror/internal/pipeline"
)

// assemble implements spec.md §4.5.7: it runs decoder through encoder and
// leaves outputPath holding the transcoded file on success, removing any
// partial output (and any intermediate temp file) on failure.
func assemble(decoder, encoder codec.Adapter, inputPath, outputPath string, inputMode os.FileMode) error {
	ctx := context.Background()

	if !encoder.HasEncoder() {
		return assembleDirectDump(ctx, decoder, inputPath, outputPath, inputMode)
	}

	var tempPath string
	opts := codec.EncodeOpts{OutFile: outputPath}

	p := pipeline.New(ctx)

	if encoder.EncodesFromStdin() {
		inputFile, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open `%s': %w", inputPath, err)
		}
		defer inputFile.Close()

		if decoder.HasDecoder() {
			decoder.AttachDecoder(p, inputPath)
		}
		p.SetStdin(inputFile)
	} else {
		tempPath = outputPath + ".wav"
		if err := decodeOrCopyToTemp(ctx, decoder, inputPath, tempPath); err != nil {
			return err
		}
		defer os.Remove(tempPath)
		opts.InFile = tempPath
	}

	encoder.AttachEncoder(p, opts)

	if encoder.EncodesToStdout() {
		outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, inputMode)
		if err != nil {
			return fmt.Errorf("failed to open `%s' for writing: %w", outputPath, err)
		}
		p.SetStdout(outFile)

		err = p.Run()
		outFile.Close()
		if err != nil {
			os.Remove(outputPath)
			return err
		}
		return nil
	}

	// The encoder writes outputPath itself (EncodeOpts.OutFile); the
	// runner never opens it.
	if err := p.Run(); err != nil {
		os.Remove(outputPath)
		return err
	}
	return os.Chmod(outputPath, inputMode)
}

// assembleDirectDump handles the dummy-encoder case: there's no encoder
// stage, so the decoder's output (or, if there's no decoder either, the
// raw input) is dumped straight to outputPath.
func assembleDirectDump(ctx context.Context, decoder codec.Adapter, inputPath, outputPath string, inputMode os.FileMode) error {
	if !decoder.HasDecoder() {
		// Both sides are passthrough: a degenerate re-encode of an
		// already-WAV input back to WAV. There is no process to run, so
		// copy the bytes directly.
		return copyFile(inputPath, outputPath, inputMode)
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open `%s': %w", inputPath, err)
	}
	defer inputFile.Close()

	outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, inputMode)
	if err != nil {
		return fmt.Errorf("failed to open `%s' for writing: %w", outputPath, err)
	}

	p := pipeline.New(ctx)
	decoder.AttachDecoder(p, inputPath)
	p.SetStdin(inputFile)
	p.SetStdout(outFile)

	err = p.Run()
	outFile.Close()
	if err != nil {
		os.Remove(outputPath)
		return err
	}
	return nil
}

// decodeOrCopyToTemp materializes decoder's output for inputPath into
// tempPath, used when the encoder can't read stdin (alac).
func decodeOrCopyToTemp(ctx context.Context, decoder codec.Adapter, inputPath, tempPath string) error {
	if !decoder.HasDecoder() {
		return copyFile(inputPath, tempPath, 0o644)
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open `%s': %w", inputPath, err)
	}
	defer inputFile.Close()

	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file `%s': %w", tempPath, err)
	}

	p := pipeline.New(ctx)
	decoder.AttachDecoder(p, inputPath)
	p.SetStdin(inputFile)
	p.SetStdout(tempFile)

	err = p.Run()
	tempFile.Close()
	if err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
