package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathalama/review-universities/internal/client/models"
)

// List prints the catalogue. When the backend is unreachable the cached copy
// is shown and marked as such.
func (a *App) List(ctx context.Context) error {
	res, err := a.catalog.ListUniversities(ctx)
	if err != nil {
		return err
	}
	if res.FromCache {
		fmt.Fprintln(a.out, "(offline: showing the cached catalogue)")
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(a.out, "No universities yet.")
		return nil
	}
	for _, u := range res.Items {
		fmt.Fprintln(a.out, u.String())
	}
	return nil
}

// Show prints one university followed by its reviews. Reviews are not cached,
// so an offline answer shows the university only.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := idArg(args, "show <id>")
	if err != nil {
		return err
	}

	u, cached, err := a.catalog.GetUniversity(ctx, id)
	if err != nil {
		return err
	}
	a.printUniversity(u)

	if cached {
		fmt.Fprintln(a.out, "(offline: reviews are not available)")
		return nil
	}

	reviews, err := a.catalog.ListReviews(ctx, id)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Reviews (%d):\n", len(reviews))
	for _, r := range reviews {
		fmt.Fprintln(a.out, "  "+r.String())
	}
	return nil
}

func (a *App) printUniversity(u models.University) {
	fmt.Fprintf(a.out, "%s [%d]\n", u.Name, u.ID)
	fmt.Fprintf(a.out, "Location: %s\n", u.Location())
	if u.AverageRating != nil {
		fmt.Fprintf(a.out, "Rating:   %.1f\n", *u.AverageRating)
	}
	if u.Website != "" {
		fmt.Fprintf(a.out, "Website:  %s\n", u.Website)
	}
	if len(u.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags:     %s\n", strings.Join(u.Tags, ", "))
	}
	if u.Description != "" {
		fmt.Fprintln(a.out, u.Description)
	}
}

func (a *App) AddUniversity(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	var req models.CreateUniversityRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if req.Country, err = getSimpleText(a.reader, "Country", a.out); err != nil {
		return err
	}
	if req.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return err
	}
	if req.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Website, err = getSimpleText(a.reader, "Website", a.out); err != nil {
		return err
	}
	if req.LogoURL, err = getSimpleText(a.reader, "Logo URL", a.out); err != nil {
		return err
	}

	u, err := a.catalog.CreateUniversity(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Created:", u.String())
	return nil
}

// EditUniversity asks for every field; empty answers leave the field as is.
func (a *App) EditUniversity(ctx context.Context, args []string) error {
	id, err := idArg(args, "edituni <id>")
	if err != nil {
		return err
	}
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")

	var req models.UpdateUniversityRequest
	if req.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if req.Country, err = getSimpleText(a.reader, "Country", a.out); err != nil {
		return err
	}
	if req.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return err
	}
	if req.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Website, err = getSimpleText(a.reader, "Website", a.out); err != nil {
		return err
	}
	if req.LogoURL, err = getSimpleText(a.reader, "Logo URL", a.out); err != nil {
		return err
	}

	u, err := a.catalog.UpdateUniversity(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated:", u.String())
	return nil
}

func (a *App) DeleteUniversity(ctx context.Context, args []string) error {
	id, err := idArg(args, "deluni <id>")
	if err != nil {
		return err
	}
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete university %d and all its reviews?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.catalog.DeleteUniversity(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "University deleted.")
	return nil
}
