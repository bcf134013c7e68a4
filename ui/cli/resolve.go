// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/merchant"
)

// newResolveCmd prints the authorization the demo screen would start with.
func newResolveCmd() *cobra.Command {
	var fetch bool
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the authorization the demo would use",
		Long: `Resolves the authorization from the current settings without starting
the demo screen. When the settings call for a client token, --fetch asks
the merchant server for one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := appConfig.DemoSettings()
			source, err := demo.NewResolver().Resolve(settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", source)
			fmt.Fprintf(out, "ui_framework: %s\n", settings.UIFramework)
			if source.Synchronous() {
				fmt.Fprintf(out, "authorization: %s\n", source.Authorization)
				return nil
			}
			if !fetch {
				fmt.Fprintf(out, "authorization: fetched from %s at startup (use --fetch)\n", appConfig.Merchant.URL)
				return nil
			}

			client := merchant.NewClient(appConfig.Merchant.URL, appConfig.Merchant.Timeout)
			token, err := client.CreateCustomerAndFetchClientToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch client token: %w", err)
			}
			fmt.Fprintf(out, "authorization: %s\n", token)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch a client token from the merchant server")
	applySettingsFlags(cmd)
	return cmd
}

// newTransactionCmd looks up a transaction the demo created.
func newTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transaction <id>",
		Short: "Show a transaction recorded by the merchant server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := merchant.NewClient(appConfig.Merchant.URL, appConfig.Merchant.Timeout)
			t, err := client.Transaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id: %s\n", t.ID)
			fmt.Fprintf(out, "status: %s\n", t.Status)
			fmt.Fprintf(out, "amount: %s\n", t.Amount)
			fmt.Fprintf(out, "payment_method_type: %s\n", t.PaymentMethodType)
			if t.MerchantAccountID != "" {
				fmt.Fprintf(out, "merchant_account_id: %s\n", t.MerchantAccountID)
			}
			fmt.Fprintf(out, "created_at: %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
