package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fragmen"
	"github.com/fwojciec/fragmen/fs"
	"github.com/fwojciec/fragmen/glamour"
	"github.com/fwojciec/fragmen/huh"
	fragslog "github.com/fwojciec/fragmen/slog"
	"github.com/fwojciec/fragmen/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Registry directory used when neither --registry nor FRAGMEN_REGISTRY is set.
	RegistryDir string

	// Consumer project directory. Config and installed fragments are
	// resolved relative to it.
	WorkDir string

	// In-memory SQLite database backing search.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Main{
		RegistryDir: defaultRegistryDir(),
		WorkDir:     wd,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fragmen"),
		kong.Description("Copy utility fragments from the registry into your project."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'fragmen --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	registryDir := cli.Registry
	if registryDir == "" {
		registryDir = m.RegistryDir
	}
	configPath := cli.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(m.WorkDir, configPath)
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fragments fragmen.FragmentService = fs.NewFragmentService(registryDir)
	var installer fragmen.Installer = fs.NewInstaller(registryDir, m.WorkDir)
	if cli.Debug {
		fragments = fragslog.NewLoggingFragmentService(fragments, logger)
		installer = fragslog.NewLoggingInstaller(installer, logger)
	}
	deps.Fragments = fragments
	deps.Installer = installer
	deps.Config = fs.NewConfigService(configPath, logger)
	deps.ConfigPath = configPath

	command := ""
	if node := kongCtx.Selected(); node != nil {
		command = node.Name
	}

	switch command {
	case "init":
		deps.Prompter = huh.NewPrompter(os.Getenv("ACCESSIBLE") != "")

	case "search":
		m.DB = sqlite.NewDB(":memory:")
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "error: failed to open search index: %s\n", err)
			return fmt.Errorf("failed to open search index: %w", err)
		}
		defer m.Close()

		var search fragmen.SearchService = sqlite.NewSearchService(m.DB, fragments)
		if cli.Debug {
			search = fragslog.NewLoggingSearchService(search, logger)
		}
		deps.Search = search

	case "show":
		if !cli.Show.Raw {
			renderer, err := glamour.NewRenderer(cli.Show.Style, cli.Show.Width)
			if err != nil {
				fmt.Fprintf(stderr, "error: failed to create renderer: %s\n", err)
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			deps.Renderer = renderer
		}
	}

	return kongCtx.Run(deps)
}

// defaultRegistryDir returns FRAGMEN_REGISTRY if set, otherwise the registry
// directory shipped next to the executable. It never falls back to the
// working directory.
func defaultRegistryDir() string {
	if dir := os.Getenv("FRAGMEN_REGISTRY"); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "registry"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "registry")
}
