package cmd

import (
	"fmt"
	"strings"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/dto/response"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/widget"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print product analytics and the feedback table",
	Long: `Print the dashboard to the terminal: average rating per product, the top and
bottom rated products, and every feedback record in the requested order.`,
	Example: `  customer-feedback report --sort rating --dir desc`,
	RunE:    runReport,
}

var (
	reportTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6D28D9"))
	reportHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	reportMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	reportStarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15"))
)

func init() {
	reportCmd.Flags().String("sort", string(usecase.SortByID), "sort field: id, userName, productName, rating or sentiment")
	reportCmd.Flags().String("dir", string(usecase.SortAsc), "sort direction: asc or desc")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	field, _ := cmd.Flags().GetString("sort")
	dir, _ := cmd.Flags().GetString("dir")
	state := usecase.ParseSortState(field, dir)

	service := usecase.NewService(repository.NewRepository(logger), logger)

	analytics, err := service.Analytics.GetProductAnalytics(cmd.Context())
	if err != nil {
		logger.Error("Failed to compute analytics", zap.Error(err))
		return err
	}

	list, err := service.Feedback.ListFeedback(cmd.Context(), state)
	if err != nil {
		logger.Error("Failed to list feedback", zap.Error(err))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(analytics, list))
	return nil
}

func renderReport(analytics *response.AnalyticsResponse, list *response.FeedbackListResponse) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("Customer Feedback Dashboard"))
	b.WriteString("\n\n")

	b.WriteString(reportHeadingStyle.Render("Average Ratings"))
	b.WriteString("\n")
	for _, st := range analytics.All {
		fmt.Fprintf(&b, "  %-18s %s %.1f\n", st.Product, terminalStars(st.AverageRating), st.AverageRating)
	}

	b.WriteString("\n")
	b.WriteString(reportHeadingStyle.Render("Top Rated Products"))
	b.WriteString("\n")
	writeRanked(&b, analytics.Top)

	b.WriteString("\n")
	b.WriteString(reportHeadingStyle.Render("Lowest Rated Products"))
	b.WriteString("\n")
	writeRanked(&b, analytics.Bottom)

	b.WriteString("\n")
	b.WriteString(reportHeadingStyle.Render(fmt.Sprintf("Feedback (sorted by %s %s)", list.Sort.Field, list.Sort.Direction)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-6s %-20s %-18s %-7s %-*s %s\n", "ID", "User", "Product", "Rating", response.CommentPreviewChars+3, "Comment", "Sentiment")
	for _, f := range list.Feedback {
		fmt.Fprintf(&b, "  %-6s %-20s %-18s %s %d %-*s %s\n",
			f.ID, f.UserName, f.ProductName,
			terminalStars(float64(f.Rating)), f.Rating,
			response.CommentPreviewChars+3, f.CommentPreview,
			widget.SentimentBadge(entity.Sentiment(f.Sentiment)).Render(),
		)
	}

	b.WriteString("\n")
	b.WriteString(reportMutedStyle.Render(fmt.Sprintf("Showing %d reviews", list.Total)))
	b.WriteString("\n")

	return b.String()
}

func writeRanked(b *strings.Builder, stats []response.ProductStatResponse) {
	for _, st := range stats {
		fmt.Fprintf(b, "  #%d %-18s %.2f (%d reviews)\n", st.Rank, st.Product, st.AverageRating, st.Count)
	}
}

// terminalStars draws the read-only star control: filled stars up to the rating.
func terminalStars(rating float64) string {
	stars := widget.NewReadOnlyStarRating(rating, 0).Stars()

	var filled, empty strings.Builder
	for _, s := range stars {
		if s.Filled {
			filled.WriteString("★")
		} else {
			empty.WriteString("☆")
		}
	}
	return reportStarStyle.Render(filled.String()) + reportMutedStyle.Render(empty.String())
}
