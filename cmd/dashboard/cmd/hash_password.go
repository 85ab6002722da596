package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dashboard/pkg/auth"
)

var hashCost int

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Generate a bcrypt hash for a user password",
	Long: `Generate a bcrypt hash for the password field of a user record.

Without an argument the password is read from the first line of stdin,
which keeps it out of shell history:

  printf '%s' "$PASSWORD" | dashboard hash-password`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passwordInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(password, hashCost)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
		return err
	},
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", auth.DefaultBcryptCost, "bcrypt cost")
	rootCmd.AddCommand(hashPasswordCmd)
}

func passwordInput(args []string, in io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
