package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		accountID    string
		tenantID     string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save account and credentials",
		Long:  "Save the Purview account and service principal credentials to the CLI config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			var err error

			accountID, err = promptIfEmpty(reader, accountID, "Account ID")
			if err != nil {
				return err
			}

			tenantID, err = promptIfEmpty(reader, tenantID, "Tenant ID")
			if err != nil {
				return err
			}

			clientID, err = promptIfEmpty(reader, clientID, "Client ID")
			if err != nil {
				return err
			}

			if clientSecret == "" {
				fmt.Fprint(os.Stdout, "Client Secret: ")

				secretBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Fprintln(os.Stdout)

				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}

				clientSecret = string(secretBytes)
			}

			err = saveConfig(map[string]string{
				"account":       accountID,
				"tenant_id":     tenantID,
				"client_id":     clientID,
				"client_secret": clientSecret,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Purview account ID")
	cmd.Flags().StringVar(&tenantID, "tenant-id", "", "Azure AD tenant ID")
	cmd.Flags().StringVar(&clientID, "client-id", "", "service principal client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "service principal client secret (prompted if omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}
}

func promptIfEmpty(reader *bufio.Reader, value, label string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintf(os.Stdout, "%s: ", label)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}

	return strings.TrimSpace(line), nil
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	return filepath.Join(home, ".ucapi", "config.yml"), nil
}

func saveConfig(values map[string]string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	existing := map[string]string{}

	data, err := os.ReadFile(path)
	if err == nil {
		_ = yaml.Unmarshal(data, &existing)
	}

	for key, value := range values {
		if value != "" {
			existing[key] = value
		}
	}

	out, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, out, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
