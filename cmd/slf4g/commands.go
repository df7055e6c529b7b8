package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/app"
	"github.com/Gunvolt24/slf4g/internal/manifest"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// newRootCmd — дерево команд; stdout/stderr подставляются в тестах.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var jsonOutput bool

	root := &cobra.Command{
		Use:           "slf4g",
		Short:         "Logging facade with deployment-time backend selection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	// bootstrap — конфигурация из окружения (SLF4G_*) и сборка фасада.
	bootstrap := func(ctx context.Context) (*app.App, app.Cleanup, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, func() {}, fmt.Errorf("load config: %w", err)
		}
		return app.Bootstrap(ctx, &cfg, stderr)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Log one message per enabled level through the resolved binding",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, cleanup, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				n := a.Demo(cmd.Context())
				if jsonOutput {
					return printJSON(stdout, map[string]int{"emitted": n})
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "resolve",
			Short: "Show which binding is selected and where the name came from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, cleanup, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				d := a.Describe()
				if jsonOutput {
					return printJSON(stdout, d)
				}
				printDescription(stdout, d)
				return nil
			},
		},
		&cobra.Command{
			Use:   "bindings",
			Short: "List statically registered bindings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				names := slf4g.Bindings()
				if jsonOutput {
					return printJSON(stdout, names)
				}
				for _, name := range names {
					fmt.Fprintln(stdout, name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "check <manifest>",
			Short: "Validate a manifest file: it parses, names a binding and the binding is known",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				name, err := checkManifest(args[0], cfg.Manifest.Field)
				if err != nil {
					return err
				}
				fmt.Fprintf(stderr, "manifest ok (binding=%s)\n", name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Run the demo HTTP server (/ping, /binding, /demo, /metrics)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, cleanup, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return a.Run(ctx)
			},
		},
	)

	return root
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printDescription(w io.Writer, d app.Description) {
	binding := d.Binding
	if binding == "" {
		binding = "-"
	} else if d.Source != "" {
		binding += " (" + d.Source + ")"
	}

	fmt.Fprintf(w, "platform:  %s\n", d.Platform)
	fmt.Fprintf(w, "binding:   %s\n", binding)
	fmt.Fprintf(w, "active:    %s\n", d.Active)
	if d.Error != "" {
		fmt.Fprintf(w, "error:     %s\n", d.Error)
	}
	fmt.Fprintf(w, "available: %s\n", strings.Join(d.Available, ", "))
}

// checkManifest — имя привязки из файла; плагины (*.so) проверяются только по имени.
func checkManifest(path, field string) (string, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return "", err
	}
	name, ok := m.Binding(field)
	if !ok {
		return "", fmt.Errorf("%w: no %q field in %s", slf4g.ErrBindingNotFound, field, path)
	}
	if strings.HasSuffix(name, ".so") {
		return name, nil
	}
	if _, ok := slf4g.DefaultRegistry.Lookup(name); !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", slf4g.ErrUnknownBinding, name, strings.Join(slf4g.Bindings(), ", "))
	}
	return name, nil
}
