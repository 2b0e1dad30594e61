package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/config"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/session"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and verify it with the emailed OTP",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd)
}

// newAPIClient wires the REST client against the configured backend with the
// file-backed session store.
func newAPIClient(cfg config.Config, logger *slog.Logger) (*client.Client, session.Store) {
	sessions := session.NewFileStore(cfg.SessionFile)
	api := client.New(cfg.APIBaseURL,
		client.WithSessionStore(sessions),
		client.WithLogger(logger),
	)
	return api, sessions
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	api, _ := newAPIClient(cfg, logger)
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	email, err := askValid(in, out, "Email", validate.Email)
	if err != nil {
		return err
	}
	password, err := askValid(in, out, "Password", validate.Password)
	if err != nil {
		return err
	}

	sess, err := api.Login(cmd.Context(), client.LoginRequest{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}
	fmt.Fprintf(out, "Signed in as %s\n", sess.Email)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	api, _ := newAPIClient(cfg, logger)
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	first, err := askValid(in, out, "First Name", func(v string) string {
		return validate.PersonName(v, "Enter first name")
	})
	if err != nil {
		return err
	}
	last, err := askValid(in, out, "Last Name", func(v string) string {
		return validate.PersonName(v, "Enter last name")
	})
	if err != nil {
		return err
	}
	email, err := askValid(in, out, "Email", validate.Email)
	if err != nil {
		return err
	}
	phone, err := askValid(in, out, "Phone (+92XXXXXXXXXX)", func(v string) string {
		return validate.PhoneNumber(validate.NormalizePhone(v))
	})
	if err != nil {
		return err
	}
	password, err := askValid(in, out, "Password", validate.Password)
	if err != nil {
		return err
	}
	confirm, err := askValid(in, out, "Confirm Password", func(v string) string {
		if v != password {
			return "Passwords do not match"
		}
		return ""
	})
	if err != nil {
		return err
	}

	sess, err := api.SignUp(cmd.Context(), client.SignUpRequest{
		FirstName:       first,
		LastName:        last,
		Email:           email,
		PhoneNumber:     validate.NormalizePhone(phone),
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}

	otp, err := askValid(in, out, "Enter the 4-digit OTP", validate.OTP)
	if err != nil {
		return err
	}
	if err := api.VerifyOTP(cmd.Context(), client.OTPRequest{Email: email, OTP: otp}); err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}
	fmt.Fprintf(out, "Account created for %s\n", sess.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	api, _ := newAPIClient(cfg, logger)
	if err := api.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}

// askValid prompts until check passes on the answer, printing each message
// the way the forms render inline errors.
func askValid(in *bufio.Reader, out io.Writer, label string, check func(string) string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", io.EOF
		}
		line = strings.TrimSpace(line)
		if msg := check(line); msg != "" {
			fmt.Fprintln(out, msg)
			continue
		}
		return line, nil
	}
}
