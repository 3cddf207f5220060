package cli

import (
	"context"
	"fmt"
)

func (a *App) Users(ctx context.Context) error {
	users, err := a.admin.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "[%d] %s %s (%s)\n", u.ID, u.Email, u.FullName(), u.Role)
	}
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := idArg(args, "deluser <id>")
	if err != nil {
		return err
	}
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete user %d and everything they wrote?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.admin.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}

// Reviews lists the reviews of all universities.
func (a *App) Reviews(ctx context.Context) error {
	reviews, err := a.admin.ListAllReviews(ctx)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintln(a.out, r.String())
	}
	return nil
}
