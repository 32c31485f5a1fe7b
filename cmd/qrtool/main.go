package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - generate: Render a QR code to a PNG file
// - decode:   Read a QR code from a picture file
// - scan:     Watch a directory until a QR code shows up
// - save:     Generate a QR code and store it in the photo library

func main() {
	// Subcommand definitions
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	saveCmd := flag.NewFlagSet("save", flag.ExitOnError)

	// generate parameters
	generateText := generateCmd.String("text", "", "Text to encode")
	generateOutput := generateCmd.String("out", "qrcode.png", "Output PNG file")
	generateLabel := generateCmd.String("label", "", "Logo label (defaults to the brand label)")
	generateNoLogo := generateCmd.Bool("nologo", false, "Render without the centre logo")

	// decode parameters
	decodeInput := decodeCmd.String("in", "", "Picture file to decode")

	// scan parameters
	scanDir := scanCmd.String("dir", "", "Directory to watch for new pictures")
	scanInterval := scanCmd.Duration("interval", 500*time.Millisecond, "Polling interval")
	scanTimeout := scanCmd.Duration("timeout", 0, "Give up after this long (0 waits until interrupted)")

	// save parameters
	saveText := saveCmd.String("text", "", "Text to encode")
	saveBucket := saveCmd.String("bucket", "file:///tmp/qrstudio-library?create_dir=true", "Photo library bucket URL")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := toolFlags{
		Generate: generateFlags{
			cmd:    generateCmd,
			text:   generateText,
			output: generateOutput,
			label:  generateLabel,
			noLogo: generateNoLogo,
		},
		Decode: decodeFlags{
			cmd:   decodeCmd,
			input: decodeInput,
		},
		Scan: scanFlags{
			cmd:      scanCmd,
			dir:      scanDir,
			interval: scanInterval,
			timeout:  scanTimeout,
		},
		Save: saveFlags{
			cmd:    saveCmd,
			text:   saveText,
			bucket: saveBucket,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type toolFlags struct {
	Generate generateFlags
	Decode   decodeFlags
	Scan     scanFlags
	Save     saveFlags
}

type generateFlags struct {
	cmd    *flag.FlagSet
	text   *string
	output *string
	label  *string
	noLogo *bool
}

type decodeFlags struct {
	cmd   *flag.FlagSet
	input *string
}

type scanFlags struct {
	cmd      *flag.FlagSet
	dir      *string
	interval *time.Duration
	timeout  *time.Duration
}

type saveFlags struct {
	cmd    *flag.FlagSet
	text   *string
	bucket *string
}

func runSubcommand(ctx context.Context, flags *toolFlags) error {
	switch os.Args[1] {
	case "generate":
		return handleGenerate(flags)
	case "decode":
		return handleDecode(ctx, flags)
	case "scan":
		return handleScan(ctx, flags)
	case "save":
		return handleSave(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleGenerate(flags *toolFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	if *flags.Generate.text == "" {
		return errors.New("--text flag is required for generate command")
	}

	return runGenerate(*flags.Generate.text, *flags.Generate.output, *flags.Generate.label, !*flags.Generate.noLogo)
}

func handleDecode(ctx context.Context, flags *toolFlags) error {
	if err := flags.Decode.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse decode flags")
	}

	if *flags.Decode.input == "" {
		return errors.New("--in flag is required for decode command")
	}

	return runDecode(ctx, *flags.Decode.input)
}

func handleScan(ctx context.Context, flags *toolFlags) error {
	if err := flags.Scan.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse scan flags")
	}

	if *flags.Scan.dir == "" {
		return errors.New("--dir flag is required for scan command")
	}

	if *flags.Scan.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *flags.Scan.timeout)
		defer cancel()
	}

	return runScan(ctx, *flags.Scan.dir, *flags.Scan.interval)
}

func handleSave(ctx context.Context, flags *toolFlags) error {
	if err := flags.Save.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse save flags")
	}

	return runSave(ctx, *flags.Save.text, *flags.Save.bucket)
}

func printUsage() {
	fmt.Println("Usage: qrtool <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  generate    Render a QR code to a PNG file")
	fmt.Println("  decode      Read a QR code from a picture file")
	fmt.Println("  scan        Watch a directory until a QR code shows up")
	fmt.Println("  save        Generate a QR code and store it in the photo library")
	fmt.Println("")
	fmt.Println("Use 'qrtool <command> -h' for more information about a command.")
}
