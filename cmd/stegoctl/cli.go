package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stegod/pkg/types"
)

type clientOpts struct {
	addr   string
	apiKey string
}

func buildRootCmd() *cobra.Command {
	opts := &clientOpts{}
	root := &cobra.Command{
		Use:           "stegoctl",
		Short:         "Control CLI for a running stegod instance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultAddr := os.Getenv("STEGOD_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://127.0.0.1:8002"
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", defaultAddr, "Base URL of the stegod server")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", os.Getenv("STEGOD_API_KEY"), "Shared secret for the X-API-Key header")

	root.AddCommand(
		buildEncodeCmd(opts),
		buildDecodeCmd(opts),
		buildHealthCmd(opts),
		buildAdminCmd(opts, "reload", "Discard and rebuild the server's model"),
		buildAdminCmd(opts, "reset", "Reset the server's model state in place"),
	)
	return root
}

func buildEncodeCmd(opts *clientOpts) *cobra.Command {
	var (
		genContext string
		length     int
		seed       int64
		seedSet    bool
	)
	cmd := &cobra.Command{
		Use:   "encode <message>",
		Short: "Hide a message inside generated text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.EncodeRequest{Message: args[0], Context: genContext}
			patch := &types.SettingsPatch{}
			if length > 0 {
				patch.Length = &length
			}
			if seedSet {
				patch.Seed = seed
			}
			if patch.Length != nil || patch.Seed != nil {
				req.Settings = patch
			}
			var resp types.EncodeResponse
			if err := call(opts, http.MethodPost, "/encode", req, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&genContext, "context", "", "Priming context for generation")
	cmd.Flags().IntVar(&length, "length", 0, "Generation budget in tokens (0 = auto)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed")
	cmd.PreRun = func(c *cobra.Command, _ []string) { seedSet = c.Flags().Changed("seed") }
	return cmd
}

func buildDecodeCmd(opts *clientOpts) *cobra.Command {
	var (
		genContext   string
		expectedBits int
		seed         int64
		seedSet      bool
	)
	cmd := &cobra.Command{
		Use:   "decode <stego text>",
		Short: "Recover a hidden message from stego text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.DecodeRequest{StegoText: args[0], Context: genContext}
			if expectedBits > 0 {
				req.ExpectedBits = &expectedBits
			}
			if seedSet {
				req.Settings = &types.SettingsPatch{Seed: seed}
			}
			var resp types.DecodeResponse
			if err := call(opts, http.MethodPost, "/decode", req, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&genContext, "context", "", "Context used at encode time (required)")
	cmd.Flags().IntVar(&expectedBits, "expected-bits", 0, "Bit length of the original payload")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed used at encode time")
	cmd.PreRun = func(c *cobra.Command, _ []string) { seedSet = c.Flags().Changed("seed") }
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

func buildHealthCmd(opts *clientOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show service and model state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp types.HealthResponse
			if err := call(opts, http.MethodGet, "/health", nil, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func buildAdminCmd(opts *clientOpts, path, short string) *cobra.Command {
	return &cobra.Command{
		Use:   path,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp types.AdminResponse
			if err := call(opts, http.MethodPost, "/"+path, nil, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func call(opts *clientOpts, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, opts.addr+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.apiKey != "" {
		req.Header.Set("X-API-Key", opts.apiKey)
	}
	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var e types.ErrorResponse
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s (%d)", method, path, e.Error, e.Code)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
