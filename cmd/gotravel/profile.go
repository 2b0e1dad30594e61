package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and manage the signed-in account",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed-in account's profile",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update profile fields (blank answers keep the current value)",
	RunE:  runProfileEdit,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the signed-in account",
	RunE:  runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileEditCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

// sessionEmail loads the stored session and returns its email, failing with
// the sign-in prompt when nothing is stored.
func sessionEmail(cmd *cobra.Command) (string, *client.Client, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return "", nil, err
	}
	api, sessions := newAPIClient(cfg, logger)
	sess, err := sessions.Load()
	if err != nil || sess.Email == "" {
		return "", nil, fmt.Errorf("not signed in; run gotravel login first")
	}
	return sess.Email, api, nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	email, api, err := sessionEmail(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	p, err := api.GetProfile(cmd.Context(), email)
	if err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}
	fmt.Fprintf(out, "Name:    %s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(out, "Email:   %s\n", p.Email)
	fmt.Fprintf(out, "Phone:   %s\n", p.PhoneNumber)
	if p.City != "" || p.Country != "" {
		fmt.Fprintf(out, "Place:   %s %s\n", p.City, p.Country)
	}
	if p.Address != "" {
		fmt.Fprintf(out, "Address: %s\n", p.Address)
	}
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	email, api, err := sessionEmail(cmd)
	if err != nil {
		return err
	}
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	upd := client.ProfileUpdate{}
	fields := []struct {
		label string
		dst   *string
		check func(string) string
	}{
		{"First Name", &upd.FirstName, func(v string) string { return validate.ProfileText(v, "Invalid first name") }},
		{"Last Name", &upd.LastName, func(v string) string { return validate.ProfileText(v, "Invalid last name") }},
		{"Phone (03XXXXXXXXX)", &upd.PhoneNumber, validate.LocalPhone},
		{"City", &upd.City, func(v string) string { return validate.ProfileText(v, "Invalid city") }},
		{"Country", &upd.Country, func(v string) string { return validate.ProfileText(v, "Invalid country") }},
		{"Address", &upd.Address, validate.Address},
	}
	for _, f := range fields {
		value, err := askOptional(in, out, f.label, f.check)
		if err != nil {
			return err
		}
		*f.dst = value
	}

	if err := api.UpdateProfile(cmd.Context(), email, upd); err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}
	fmt.Fprintln(out, "Profile Updated Successfully")
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	email, api, err := sessionEmail(cmd)
	if err != nil {
		return err
	}
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Delete the account for %s? This cannot be undone (y/n): ", email)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return io.EOF
	}
	if !strings.EqualFold(strings.TrimSpace(line), "y") {
		fmt.Fprintln(out, "Cancelled")
		return nil
	}

	if err := api.DeleteAccount(cmd.Context()); err != nil {
		fmt.Fprintln(out, client.UserMessage(err))
		return err
	}
	fmt.Fprintln(out, "Account deleted")
	return nil
}

// askOptional prompts once per field; an empty answer means "keep current".
// Non-empty answers re-prompt until they pass check.
func askOptional(in *bufio.Reader, out io.Writer, label string, check func(string) string) (string, error) {
	for {
		fmt.Fprintf(out, "%s (blank to keep): ", label)
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
