// cmd/drumtab/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"battle-of-bastions/internal/drumtab"
	"battle-of-bastions/internal/logger"
)

const usage = `usage:
  drumtab export -library songs.json [-song NAME]
  drumtab import -library songs.json -tab groove.txt`

func main() {
	log := logger.Init()
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "export":
		err = runExport(os.Args[2:], os.Stdout)
	case "import":
		err = runImport(os.Args[2:], log)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error(os.Args[1]+" failed", "err", err)
		os.Exit(1)
	}
}

func runExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	libPath := fs.String("library", "songs.json", "song library (JSON)")
	name := fs.String("song", "", "export only the song with this name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	songs, err := readLibrary(*libPath)
	if err != nil {
		return err
	}
	var tabs []string
	for _, s := range songs {
		if *name == "" || s.Name == *name {
			tabs = append(tabs, drumtab.Export(s))
		}
	}
	if len(tabs) == 0 {
		return fmt.Errorf("no matching songs in %s", *libPath)
	}
	_, err = fmt.Fprintln(out, strings.Join(tabs, "\n\n"))
	return err
}

func runImport(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	libPath := fs.String("library", "songs.json", "song library (JSON), created if missing")
	tabPath := fs.String("tab", "", "ASCII drum tab to import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tabPath == "" {
		return errors.New("-tab is required")
	}

	text, err := os.ReadFile(*tabPath)
	if err != nil {
		return fmt.Errorf("read tab: %w", err)
	}
	song, messages, err := drumtab.Import(string(text))
	if err != nil {
		return fmt.Errorf("%s: %w", *tabPath, err)
	}
	for _, m := range messages {
		log.Warn("tab line skipped", "file", *tabPath, "reason", m)
	}
	song.Stamp(time.Now())

	songs, err := readLibrary(*libPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	songs = append(songs, song)

	data, err := drumtab.EncodeLibrary(songs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*libPath, data, 0o644); err != nil {
		return fmt.Errorf("write library: %w", err)
	}
	log.Info("song imported", "name", song.Name, "id", song.ID, "measures", len(song.Measures), "songs", len(songs))
	return nil
}

func readLibrary(path string) ([]drumtab.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}
	return drumtab.DecodeLibrary(data)
}
