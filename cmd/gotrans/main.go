// Command gotrans translates editor text with every configured provider and
// prints the merged result for the editor's floating window.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/ZaguanLabs/gotrans"
	"github.com/ZaguanLabs/gotrans/cache"
	"github.com/ZaguanLabs/gotrans/config"
	"github.com/ZaguanLabs/gotrans/internal/app"
	"github.com/ZaguanLabs/gotrans/internal/editor"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI. Errors are logged to stderr and returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		c.logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

type cli struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
	configPath string
	html       bool
	json       bool
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   gotrans.Name,
		Short: gotrans.Description,
		Long: `gotrans translates a word, a line or a selection through every configured
provider and prints the merged markdown, one section per provider.

Providers:
  aws      AWS Translate (credentials from the AWS shared config)
  google   Google web translate endpoint (no key)
  openai   OpenAI-compatible chat model (API key)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default: CONFIG_PATH or ./gotrans.yaml)")
	root.PersistentFlags().BoolVar(&c.html, "html", false, "Render output as HTML")
	root.PersistentFlags().BoolVar(&c.json, "json", false, "Output blocks as JSON")
	root.MarkFlagsMutuallyExclusive("html", "json")

	root.AddCommand(
		c.wordCmd(),
		c.lineCmd(),
		c.selectionCmd(),
		c.languagesCmd(),
		c.cacheCmd(),
		c.versionCmd(),
	)

	return root
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.stdout, "%s %s\n", gotrans.Name, gotrans.FullVersion())
			if gotrans.GitCommit != "unknown" && gotrans.GitCommit != "" {
				fmt.Fprintf(c.stdout, "  commit:  %s\n", gotrans.GitCommit)
			}
			if gotrans.BuildDate != "unknown" && gotrans.BuildDate != "" {
				fmt.Fprintf(c.stdout, "  built:   %s\n", gotrans.BuildDate)
			}
		},
	}
}

func (c *cli) wordCmd() *cobra.Command {
	var col int
	cmd := &cobra.Command{
		Use:   "word [line...]",
		Short: "Translate the word under the cursor",
		Long:  "Translate the word at --col of the given line (args joined by spaces, or the first line of stdin).",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := c.lineInput(args)
			if err != nil {
				return err
			}
			word, err := editor.WordAt(line, col)
			if err != nil {
				return err
			}
			return c.translate(cmd.Context(), word)
		},
	}
	cmd.Flags().IntVar(&col, "col", 1, "1-based cursor column")
	return cmd
}

func (c *cli) lineCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "line [file]",
		Short: "Translate a whole line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.fileInput(args)
			if err != nil {
				return err
			}
			line, err := editor.LineAt(text, n)
			if err != nil {
				return err
			}
			return c.translate(cmd.Context(), line)
		},
	}
	cmd.Flags().IntVar(&n, "line", 1, "1-based line number")
	return cmd
}

func (c *cli) selectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selection [text...]",
		Short: "Translate selected text",
		Long:  "Translate the arguments joined by spaces, or all of stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(c.stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}
			return c.translate(cmd.Context(), text)
		},
	}
}

func (c *cli) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages each ready provider supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			for _, id := range rt.Translator.Providers() {
				client, _ := rt.Translator.Client(id)
				set := rt.Languages[id]
				fmt.Fprintf(c.stdout, "%s (%s, %d): %s\n", client.Name(), id, set.Len(), strings.Join(set.Codes(), " "))
			}
			return nil
		},
	}
}

func (c *cli) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Export or import the result cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "export <file>",
			Short: "Write cached results to a JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := c.openCache(cmd.Context())
				if err != nil {
					return err
				}
				defer store.Close()

				return cache.NewExporter(store).ExportToFile(cmd.Context(), args[0], map[string]string{"version": gotrans.FullVersion()})
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Load cached results from a JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := c.openCache(cmd.Context())
				if err != nil {
					return err
				}
				defer store.Close()

				result, err := cache.NewImporter(store).ImportFromFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "imported %d, failed %d\n", result.Imported, result.Failed)
				return nil
			},
		},
	)

	return cmd
}

func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.logger = app.NewLogger(c.stderr, cfg.Log)
	return cfg, nil
}

func (c *cli) bootstrap(ctx context.Context) (*app.Runtime, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Bootstrap(ctx, cfg, c.logger)
}

func (c *cli) openCache(ctx context.Context) (cache.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := cache.Open(ctx, cache.Config{
		Backend:   cfg.Cache.Backend,
		TTL:       cfg.Cache.TTL,
		RedisURL:  cfg.Cache.RedisURL,
		KeyPrefix: cfg.Cache.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, &gotrans.ConfigurationError{Message: "no cache backend configured", Value: cfg.Cache.Backend}
	}
	return store, nil
}

func (c *cli) translate(ctx context.Context, text string) error {
	rt, err := c.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	blocks, err := rt.Translator.Translate(ctx, text)
	if err != nil {
		return err
	}

	return c.write(blocks)
}

func (c *cli) write(blocks []gotrans.RenderBlock) error {
	switch {
	case c.json:
		if blocks == nil {
			blocks = []gotrans.RenderBlock{}
		}
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(blocks)
	case c.html:
		out, err := app.RenderHTML(blocks)
		if err != nil {
			return err
		}
		_, err = io.WriteString(c.stdout, out)
		return err
	default:
		if len(blocks) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(c.stdout, gotrans.JoinBlocks(blocks))
		return err
	}
}

// lineInput returns args joined by spaces, or the first line of stdin.
func (c *cli) lineInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	scanner := bufio.NewScanner(c.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return "", nil
}

// fileInput returns the named file's contents, or all of stdin.
func (c *cli) fileInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}
