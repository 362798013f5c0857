package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mxmauro/teaecb"
	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/dump"
	"github.com/mxmauro/teaecb/internal/config"
	"github.com/mxmauro/teaecb/pipeline"
	"github.com/pion/logging"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	message := flag.String("message", "", "Message to encrypt (default: built-in sample)")
	key := flag.String("key", "", "Key as 32 hex digits (default: built-in sample)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: 1)")
	logLevel := flag.String("log-level", "", "disabled, error, warn, info, debug or trace")
	hideBlocks := flag.Bool("no-blocks", false, "Do not dump individual blocks")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Message:    *message,
		Key:        *key,
		Workers:    *workers,
		LogLevel:   *logLevel,
		HideBlocks: *hideBlocks,
	})

	teaKey, err := cfg.TEAKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = os.Stderr
	factory.DefaultLogLevel = level
	log := factory.NewLogger("teademo")

	log.Infof("running with %d worker(s)", cfg.Workers)
	if err = run(os.Stdout, []byte(cfg.Message), teaKey, cfg, factory.NewLogger("pipeline")); err != nil {
		log.Errorf("demo failed: %v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, message []byte, key tea.Key, cfg config.Config, log logging.LeveledLogger) error {
	var encrypted [][]byte
	var decrypted [][]byte

	// An unresolved config leaves ShowBlocks nil; that means the default, show them.
	showBlocks := cfg.ShowBlocks == nil || *cfg.ShowBlocks

	p := pipeline.New(key, pipeline.Options{
		Workers: cfg.Workers,
		Observer: func(stage pipeline.Stage, _ int, block []byte) {
			copied := append([]byte(nil), block...)
			if stage == pipeline.StageEncrypted {
				encrypted = append(encrypted, copied)
			} else {
				decrypted = append(decrypted, copied)
			}
		},
		Logger: log,
	})

	fmt.Fprint(w, "\nOriginal message:\n")
	_ = dump.ASCII(w, message)

	fmt.Fprint(w, "\nEncrypting...\n")
	ciphertext := p.Encrypt(message)
	if showBlocks {
		printBlocks(w, "Encrypted block", pipeline.StageEncrypted, encrypted)
	}
	fmt.Fprint(w, "Encrypted message:\n")
	_ = dump.ASCII(w, ciphertext)

	fmt.Fprint(w, "\nDecrypting...\n")
	plaintext, err := p.Decrypt(ciphertext)
	if showBlocks {
		printBlocks(w, "Decrypted block", pipeline.StageDecrypted, decrypted)
	}
	if err != nil {
		if errors.Is(err, teaecb.ErrPadding) {
			return fmt.Errorf("wrong key or corrupted data: %w", err)
		}
		return err
	}

	fmt.Fprint(w, "\nDecrypted message:\n")
	_ = dump.ASCII(w, plaintext)
	return nil
}

func printBlocks(w io.Writer, title string, stage pipeline.Stage, blocks [][]byte) {
	hexObs := dump.NewObserver(w, dump.FormatHex)
	asciiObs := dump.NewObserver(w, dump.FormatASCII)

	fmt.Fprintf(w, "%s (hex):\n", title)
	for idx, block := range blocks {
		hexObs(stage, idx, block)
	}
	fmt.Fprintf(w, "%s (ASCII):\n", title)
	for idx, block := range blocks {
		asciiObs(stage, idx, block)
	}
}
