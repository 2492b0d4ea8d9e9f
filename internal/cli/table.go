package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
)

const dateLayout = "2006-01-02 15:04"

// FormatAmount renders a signed amount in rupees; incoming cash is shown with
// a leading plus.
func FormatAmount(amount int64) string {
	if amount < 0 {
		return "+" + RupeeIcon + strconv.FormatInt(-amount, 10)
	}
	return RupeeIcon + strconv.FormatInt(amount, 10)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

// RenderTransactions renders stored transactions as a table, optionally
// with their IDs.
func RenderTransactions(transactions []model.Transaction, showIDs bool) string {
	if len(transactions) == 0 {
		return FormatInfo("No transactions found")
	}

	headers := []string{"Date", "Amount", "Category", "Remarks", "Person", "Source"}
	if showIDs {
		headers = append([]string{"ID"}, headers...)
	}

	t := newTable(headers...)
	for _, txn := range transactions {
		row := []string{
			txn.CreatedAt.Local().Format(dateLayout),
			FormatAmount(txn.Candidate.Amount),
			txn.Candidate.Category,
			txn.Candidate.Remarks,
			txn.Candidate.PaidBy,
			SourceLabel(txn.Source),
		}
		if showIDs {
			row = append([]string{txn.ID}, row...)
		}
		t.Row(row...)
	}
	return t.Render()
}

// RenderSummary renders per-category totals followed by net spend.
func RenderSummary(totals []service.CategoryTotal) string {
	if len(totals) == 0 {
		return FormatInfo("No transactions found")
	}

	t := newTable("Category", "Entries", "Net")
	var net int64
	for _, total := range totals {
		net += total.Total
		t.Row(total.Category, strconv.Itoa(total.Count), FormatAmount(total.Total))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		FormatTitle("Summary"),
		t.Render(),
		BoldStyle.Render(fmt.Sprintf("%s Net outflow: %s", ChartIcon, FormatAmount(net))),
	)
}
