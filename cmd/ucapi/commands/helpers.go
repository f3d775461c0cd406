// Package commands implements the ucapi CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucclient"
)

// Output format constants.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Static errors for err113 compliance.
var (
	ErrNoAccount       = errors.New("no account configured: use --account, UC_ACCOUNT_ID, or 'ucapi login'")
	ErrDomainRequired  = errors.New("a governance domain is required: use --domain")
	ErrNothingToUpdate = errors.New("nothing to update: provide at least one field flag")
)

// CreateClient builds a Unified Catalog client from global flags, config file
// values, and environment variables.
func CreateClient() (ucapi.Client, error) {
	config := &ucapi.Config{
		AccountID:    viper.GetString("account"),
		BaseURL:      viper.GetString("base_url"),
		AccessToken:  viper.GetString("token"),
		TenantID:     viper.GetString("tenant_id"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Debug:        viper.GetBool("verbose"),
	}

	if config.TenantID == "" {
		config.TenantID = os.Getenv("AZURE_TENANT_ID")
	}

	if config.ClientID == "" {
		config.ClientID = os.Getenv("AZURE_CLIENT_ID")
	}

	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("AZURE_CLIENT_SECRET")
	}

	if config.AccountID == "" && config.BaseURL == "" {
		return nil, ErrNoAccount
	}

	return ucclient.New(config)
}

// StandardOutput renders data as JSON or YAML according to the global output
// flag, falling back to the provided table renderer.
func StandardOutput(data interface{}, renderTable func() error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(data)
	case OutputFormatYAML:
		return renderYAML(data)
	default:
		return renderTable()
	}
}

func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// newTable creates a table writer with the given header.
func newTable(header ...interface{}) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)

	return table
}

// formatTime formats an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02")
}

// formatContacts summarizes owner contacts for table output.
func formatContacts(contacts ucapi.Contacts) string {
	if len(contacts.Owner) == 0 {
		return ""
	}

	ids := make([]string, 0, len(contacts.Owner))
	for _, contact := range contacts.Owner {
		ids = append(ids, contact.ID)
	}

	return strings.Join(ids, ", ")
}

// truncate shortens a string for table display.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	return s[:maxLen-3] + "..."
}
