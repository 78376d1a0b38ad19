package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/chroma"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/gemini"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/jsonl"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/lipgloss"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/openrouter"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/yaml"
	"github.com/joho/godotenv"
)

// Environment variables consulted for credentials.
const (
	openRouterKeyEnv = "OPENROUTER_CRITIC_API_KEY"
	geminiKeyEnv     = "GEMINI_API_KEY"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables and flags win.
	_ = godotenv.Load()

	prompt := flag.String("prompt", "", "The original user request for the trading strategy")
	strategy := flag.String("strategy", "", "The generated strategy configuration or description")
	code := flag.String("code", "", "The generated strategy code")
	codeFile := flag.String("code-file", "", "Read the strategy code from a file instead of -code")
	models := flag.String("models", "", "Comma-separated judge identifiers (default: all registered)")
	apiKey := flag.String("api-key", "", "API key (overrides the environment)")
	transport := flag.String("transport", "openrouter", "Transport backend: openrouter or gemini")
	registryPath := flag.String("registry", "", "YAML file with judge registry overrides")
	workers := flag.Int("workers", 1, "Number of parallel judge invocations")
	out := flag.String("out", "", "Append the evaluation run to this JSONL file")
	showCode := flag.Bool("show-code", false, "Display the syntax-highlighted strategy code before the critiques")
	flag.Parse()

	if *prompt == "" || *strategy == "" {
		return errors.New("usage: tifcritic -prompt <request> -strategy <description> (-code <source> | -code-file <path>)")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := tifbench.DefaultRegistry()
	if *registryPath != "" {
		var err error
		registry, err = yaml.LoadRegistry(*registryPath, registry)
		if err != nil {
			return fmt.Errorf("load registry: %w", err)
		}
	}

	judges, err := parseJudges(*models, registry)
	if err != nil {
		return err
	}

	req := tifbench.EvaluationRequest{Prompt: *prompt, Strategy: *strategy, Code: *code}
	language := ""
	if *codeFile != "" {
		data, err := os.ReadFile(*codeFile)
		if err != nil {
			return fmt.Errorf("read code file: %w", err)
		}
		req.Code = string(data)
		language = chroma.NewDetector().DetectFromPath(*codeFile)
	}
	if req.Code == "" {
		return errors.New("no strategy code given: use -code or -code-file")
	}

	client, err := newChatClient(ctx, *transport, *apiKey)
	if err != nil {
		return err
	}

	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return err
	}

	invoker := tifbench.NewInvoker(client, registry, tifbench.WithProgress(os.Stderr))

	app := &App{
		Stdout:    os.Stdout,
		Runner:    &tifbench.Runner{Invoker: invoker, Workers: *workers},
		Renderer:  lipgloss.NewRenderer(theme),
		Tokenizer: tokenizer,
		Store:     jsonl.NewStore(),
		OutPath:   *out,
		ShowCode:  *showCode,
		Language:  language,
	}

	return app.Run(ctx, judges, req)
}

// newChatClient builds the transport for the selected backend. The
// credential check happens here, before any judge is invoked.
func newChatClient(ctx context.Context, transport, apiKey string) (tifbench.ChatClient, error) {
	switch transport {
	case "openrouter":
		key := resolveKey(apiKey, openRouterKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("no API key provided: set %s in the environment (or .env) or use -api-key", openRouterKeyEnv)
		}
		return openrouter.NewClient(key), nil
	case "gemini":
		key := resolveKey(apiKey, geminiKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("no API key provided: set %s in the environment (or .env) or use -api-key", geminiKeyEnv)
		}
		return gemini.NewClient(ctx, key)
	default:
		return nil, fmt.Errorf("unknown transport %q (want openrouter or gemini)", transport)
	}
}

func resolveKey(flagValue, envName string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envName)
}

// parseJudges splits a comma-separated judge list and validates every
// identifier against the registry. An empty list selects all
// registered judges.
func parseJudges(models string, registry tifbench.Registry) ([]string, error) {
	if strings.TrimSpace(models) == "" {
		return registry.IDs(), nil
	}

	var judges []string
	for _, id := range strings.Split(models, ",") {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := registry.Resolve(id); !ok {
			return nil, fmt.Errorf("unknown judge %q (registered: %s)", id, strings.Join(registry.IDs(), ", "))
		}
		judges = append(judges, id)
	}
	if len(judges) == 0 {
		return nil, errors.New("no judges selected")
	}
	return judges, nil
}

// App encapsulates the CLI flow for testing.
type App struct {
	Stdout    io.Writer
	Runner    *tifbench.Runner
	Renderer  *lipgloss.Renderer
	Tokenizer tifbench.Tokenizer
	Store     tifbench.RunStore
	OutPath   string
	ShowCode  bool
	Language  string
	Now       func() time.Time // nil means time.Now
}

// Run evaluates req with every judge and prints critiques, the
// summary table and the consensus line. Per-judge failures are part of
// the report; only run persistence can fail the command.
func (a *App) Run(ctx context.Context, judges []string, req tifbench.EvaluationRequest) error {
	fmt.Fprintln(a.Stdout, a.Renderer.Banner("TRADING STRATEGY EVALUATION"))
	fmt.Fprintf(a.Stdout, "\nUser Prompt:\n%s\n\n", req.Prompt)
	fmt.Fprintf(a.Stdout, "Evaluating with models: %s\n\n", strings.Join(judges, ", "))

	if a.ShowCode {
		fmt.Fprintln(a.Stdout, a.Renderer.Banner("STRATEGY CODE"))
		var lines [][]tifbench.Token
		if a.Tokenizer != nil && a.Language != "" {
			lines = a.Tokenizer.TokenizeLines(a.Language, req.Code)
		}
		fmt.Fprintln(a.Stdout, a.Renderer.RenderCode(lines, req.Code))
	}

	run := a.Runner.Run(ctx, judges, req)

	for i, res := range run.Results {
		fmt.Fprintln(a.Stdout, a.Renderer.RenderResult(res, run.Verdicts[i]))
	}

	fmt.Fprintln(a.Stdout, a.Renderer.Banner("SUMMARY"))
	fmt.Fprintln(a.Stdout, a.Renderer.RenderSummary(run))

	if a.OutPath != "" {
		now := time.Now
		if a.Now != nil {
			now = a.Now
		}
		rec := tifbench.RunRecord{
			Request:     req,
			Results:     run.Results,
			Verdicts:    run.Verdicts,
			Report:      run.Report,
			EvaluatedAt: now().UTC(),
		}
		if err := a.Store.Append(a.OutPath, rec); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
	}

	return nil
}
