package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mite-eleven/mite-go/client"
	"github.com/mite-eleven/mite-go/internal/config"
)

// commandTimeout bounds every API call made by a command.
const commandTimeout = 30 * time.Second

type rootOptions struct {
	url        string
	apiKey     string
	configPath string
	debug      bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mitectl",
		Short:         "mitectl talks to the mite time tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger(cmd.ErrOrStderr())
			if opts.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.url, "url", "", "mite account URL (overrides config and MITE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "mite API key (overrides config and MITE_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/mite/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newEntriesCmd(opts))
	rootCmd.AddCommand(newCustomersCmd(opts))
	rootCmd.AddCommand(newProjectsCmd(opts))
	rootCmd.AddCommand(newServicesCmd(opts))
	rootCmd.AddCommand(newUsersCmd(opts))
	rootCmd.AddCommand(newAccountCmd(opts))
	rootCmd.AddCommand(newMyselfCmd(opts))

	return rootCmd
}

// newClient resolves config file, environment and flags, in that order.
func (o *rootOptions) newClient() (*client.Client, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if !o.debug {
		config.SetLogLevel(cfg.LogLevel())
	}
	cc, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	if o.url != "" {
		cc.URL = o.url
	}
	if o.apiKey != "" {
		cc.APIKey = o.apiKey
	}
	log.Debug().Str("url", cc.URL).Bool("api_key_present", cc.APIKey != "").Msg("client configured")
	return client.New(cc, client.WithDebugLogging(o.debug), client.WithLogger(log.Logger))
}

// run executes fn with a fresh client and prints its result as JSON.
func (o *rootOptions) run(cmd *cobra.Command, name string, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := o.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	res, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("command", name).Int("code", client.StatusCode(err)).Dur("elapsed", elapsed).Msg(name + " failed")
		return err
	}
	log.Debug().Str("command", name).Dur("elapsed", elapsed).Msg(name + " completed")
	return printJSON(cmd.OutOrStdout(), res)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parsePairs turns repeated key=value flags into a parameter map. A value
// may itself contain '='.
func parsePairs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		out[k] = v
	}
	return out, nil
}
