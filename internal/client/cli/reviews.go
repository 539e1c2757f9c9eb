package cli

import (
	"context"
	"flag"
	"fmt"

	pkgapi "github.com/assembleally/client/pkg/api"
)

func (c *Cli) runReviews(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: assembleally reviews <for|create>")
	}

	switch args[0] {
	case "for":
		return c.runReviewsFor(ctx, args[1:])
	case "create":
		return c.runReviewsCreate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown reviews subcommand: %s", args[0])
	}
}

func (c *Cli) runReviewsFor(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user ID. Usage: assembleally reviews for <user_id>")
	}
	userID, err := parseID(args[0])
	if err != nil {
		return err
	}

	reviews, err := c.apiClient.ReviewsFor(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Printf("=== Reviews for user %d ===\n", userID)
	fmt.Println()
	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	for i, review := range reviews {
		fmt.Printf("%d. %s — rated %d/5 by %s\n",
			i+1, review.ProjectTitle, review.Rating, review.ReviewerName)
		fmt.Printf("   %s\n", review.Comment)
		fmt.Printf("   %s\n", review.CreatedAt.Format("2006-01-02"))
		fmt.Println()
	}
	return nil
}

func (c *Cli) runReviewsCreate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("reviews create", flag.ContinueOnError)
	project := flags.Int64("project", 0, "ID of the completed project")
	reviewee := flags.Int64("reviewee", 0, "ID of the other party on the project")
	rating := flags.Int("rating", 0, "Rating from 1 to 5")
	comment := flags.String("comment", "", "Review text")

	if err := flags.Parse(args); err != nil {
		return err
	}

	req := pkgapi.ReviewRequest{
		Project:  *project,
		Reviewee: *reviewee,
		Rating:   *rating,
		Comment:  *comment,
	}
	if err := pkgapi.Validate(req); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	review, err := c.apiClient.CreateReview(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Review submitted!")
	fmt.Printf("%s rated %d/5 on %q\n", review.RevieweeName, review.Rating, review.ProjectTitle)
	return nil
}
