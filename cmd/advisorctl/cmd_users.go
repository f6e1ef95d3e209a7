package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	auth "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
	"github.com/mind-engage/mindengage-advisor/internal/rbac"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash (reads stdin when no argument is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				plain = strings.TrimRight(line, "\r\n")
			}
			if plain == "" {
				return fmt.Errorf("empty password")
			}
			h, err := auth.HashPassword(plain)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}

func newUserCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local accounts",
	}
	cmd.AddCommand(newUserCreateCommand(g))
	return cmd
}

func newUserCreateCommand(g *globalFlags) *cobra.Command {
	var email, password, role, fullName, studentID string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account, optionally linked to a student profile",
		Long: `Create a local account. Student accounts get a profile: either the
existing one named by --student-id or a new one built from --name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rbac.KnownRole(role) {
				return fmt.Errorf("unknown role %q", role)
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			conn, store, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx := cmd.Context()
			var st academic.Student
			if role == "student" {
				if studentID != "" {
					if st, err = store.GetStudent(ctx, studentID); err != nil {
						return fmt.Errorf("student %s: %w", studentID, err)
					}
				} else {
					st = academic.Student{FullName: fullName}
				}
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			users := auth.NewSQLUsers(conn)
			u, err := users.Create(ctx, auth.User{Email: email, PasswordHash: hash, Role: role})
			if err != nil {
				return err
			}

			if role == "student" {
				st.UserID = u.ID
				if st.Email == "" {
					st.Email = u.Email
				}
				if _, err := store.PutStudent(ctx, st); err != nil {
					if derr := users.Delete(ctx, u.ID); derr != nil {
						return errors.Join(fmt.Errorf("link profile: %w", err), derr)
					}
					return fmt.Errorf("link profile: %w", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (%s)\n", u.Role, u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password (min 8 characters)")
	cmd.Flags().StringVar(&role, "role", "student", "Role: student, advisor or admin")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name for a new student profile")
	cmd.Flags().StringVar(&studentID, "student-id", "", "Link an existing student profile")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
