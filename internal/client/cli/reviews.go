package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/common"
)

// AddReview walks through the review form of a university: the author's
// status, the overall rating and the six category scores (1..5), the text and
// optional comma separated tags.
func (a *App) AddReview(ctx context.Context, args []string) error {
	id, err := idArg(args, "review <id>")
	if err != nil {
		return err
	}
	if _, err := a.session.RequireUser(); err != nil {
		return err
	}

	req := models.CreateReviewRequest{UniversityID: id}

	status, err := getSimpleText(a.reader, "You are a STUDENT, GRADUATE or APPLICANT?", a.out)
	if err != nil {
		return err
	}
	req.Status = models.ReviewStatus(strings.ToUpper(status))

	scores := []struct {
		prompt string
		dst    *int
	}{
		{"Overall rating (1-5)", &req.Rating},
		{"Facilities (1-5)", &req.Facilities},
		{"Opportunities (1-5)", &req.Opportunities},
		{"Location (1-5)", &req.Location},
		{"Internet (1-5)", &req.Internet},
		{"Food (1-5)", &req.Food},
		{"Difficulty (1-5)", &req.Difficulty},
	}
	for _, s := range scores {
		if *s.dst, err = getNumber(a.reader, s.prompt, a.out); err != nil {
			return err
		}
	}

	if req.Text, err = getMultiline(a.reader, "Your review", a.out); err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil {
		return err
	}
	req.Tags = common.SplitTags(tags)

	r, err := a.catalog.AddReview(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Review added:", r.String())
	return nil
}

// DeleteReview removes a review; the backend rejects deleting someone
// else's review unless the caller is an administrator.
func (a *App) DeleteReview(ctx context.Context, args []string) error {
	id, err := idArg(args, "delreview <id>")
	if err != nil {
		return err
	}
	if _, err := a.session.RequireUser(); err != nil {
		return err
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete review %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.catalog.DeleteReview(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Review deleted.")
	return nil
}
