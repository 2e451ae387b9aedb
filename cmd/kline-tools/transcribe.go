package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"kline-tools/internal/app"
)

// transcribeCmd sends an audio file to the configured Whisper endpoint and
// prints the transcript.
type transcribeCmd struct {
	app *App

	audio    string
	language string
}

func (*transcribeCmd) Name() string     { return "transcribe" }
func (*transcribeCmd) Synopsis() string { return "transcribe an audio file to text" }
func (*transcribeCmd) Usage() string {
	return `transcribe -audio file.mp3 [-lang ko]:
  Transcribe the audio file via the Whisper API configured by
  WHISPER_BASE_URL / WHISPER_API_KEY / WHISPER_MODEL and print the text.
`
}

func (c *transcribeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.audio, "audio", "", "audio file path")
	f.StringVar(&c.language, "lang", "", "ISO-639-1 language hint, e.g. ko")
}

func (c *transcribeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.audio == "" {
		slog.Error("-audio is required")
		return subcommands.ExitUsageError
	}

	text, err := app.NewTranscriber(c.app.Config).Transcribe(ctx, c.audio, c.language)
	if err != nil {
		slog.Error("transcription failed", "error", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stdout, text)
	return subcommands.ExitSuccess
}
