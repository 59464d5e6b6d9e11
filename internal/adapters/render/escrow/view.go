package escrow

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const depositBarWidth = 20

type RenderOptions struct {
	Now      time.Time
	Location *time.Location
	// KeyHints prefixes each available action with its TUI key.
	KeyHints bool
}

// Report is everything a dashboard screen shows. Zero fields are skipped.
type Report struct {
	Title    string
	Account  domain.Address
	Network  domain.Network
	Contract domain.Address
	Escrows  []domain.EscrowID
	Cursor   int
	Detail   *domain.EscrowSnapshot
	// Caller is who actions and notes are evaluated for. Defaults to Account.
	Caller domain.Address
}

func View(report Report, opts RenderOptions, s Styles) string {
	var blocks []string

	if report.Title != "" {
		blocks = append(blocks, s.Title.Render(report.Title))
	}
	if header := headerLine(report); header != "" {
		blocks = append(blocks, s.Header.Render(header))
	}
	if report.Escrows != nil {
		blocks = append(blocks, s.Section.Render(listView(report, s)))
	}
	if report.Detail != nil {
		caller := report.Caller
		if caller == "" {
			caller = report.Account
		}
		blocks = append(blocks, s.Section.Render(DetailView(*report.Detail, caller, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func headerLine(report Report) string {
	parts := make([]string, 0, 3)
	if report.Account != "" {
		parts = append(parts, "account: "+report.Account.String())
	}
	if report.Network.ChainID != 0 || report.Network.Name != "" {
		parts = append(parts, "network: "+report.Network.String())
	}
	if report.Contract != "" {
		parts = append(parts, "contract: "+report.Contract.Short())
	}

	return strings.Join(parts, "  ")
}

func listView(report Report, s Styles) string {
	lines := []string{s.Label.Render(fmt.Sprintf("Your escrows (%d)", len(report.Escrows)))}
	if len(report.Escrows) == 0 {
		lines = append(lines, s.Muted.Render("No escrows found for this account."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	selected := domain.EscrowID("")
	if report.Detail != nil {
		selected = report.Detail.ID
	}

	for i, id := range report.Escrows {
		cursor := "  "
		if i == report.Cursor && report.Cursor >= 0 {
			cursor = "> "
		}

		line := cursor + "Escrow #" + id.String()
		if id == selected {
			line = s.Selected.Render(line)
		} else {
			line = s.Value.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// DetailView renders one snapshot as seen by caller.
func DetailView(snapshot domain.EscrowSnapshot, caller domain.Address, opts RenderOptions, s Styles) string {
	details := snapshot.Details
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	lines := []string{
		s.Title.Render("Escrow #" + snapshot.ID.String()),
		field(s, "Beneficiary", details.Beneficiary.String()),
		field(s, "Amount per payer", formatEther(details.AmountPerPayer)),
		field(s, "Deadline", deadlineValue(details.Deadline, now, opts.Location, s)),
		field(s, "Your deposit", depositValue(snapshot.CallerDeposit, details.AmountPerPayer, s)),
		field(s, "All payers have paid", yesNo(domain.EveryoneSettled(snapshot))),
	}

	for _, note := range domain.StatusNotes(now, snapshot, caller) {
		lines = append(lines, s.Note.Render(note))
	}

	lines = append(lines, actionsLine(domain.AvailableActions(now, snapshot, caller), details.AmountPerPayer, opts.KeyHints, s))

	if !snapshot.FetchedAt.IsZero() {
		lines = append(lines, s.Muted.Render("fetched "+inLocation(snapshot.FetchedAt, opts.Location).Format("15:04:05")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(s Styles, label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.Label.Render(label+": "), s.Value.Render(value))
}

func actionsLine(actions domain.Actions, amount *big.Int, keyHints bool, s Styles) string {
	if !actions.Any() {
		return s.Muted.Render("No actions available.")
	}

	var labels []string
	add := func(key, label string) {
		if keyHints {
			label = "[" + key + "] " + label
		}
		labels = append(labels, s.Action.Render(label))
	}

	if actions.Pay {
		add("p", "Pay "+formatEther(amount))
	}
	if actions.Withdraw {
		add("w", "Withdraw refund")
	}
	if actions.Claim {
		add("c", "Claim funds")
	}

	return s.Label.Render("Actions: ") + strings.Join(labels, "  ")
}

func deadlineValue(deadline, now time.Time, loc *time.Location, s Styles) string {
	absolute := inLocation(deadline, loc).Format("2006-01-02 15:04")
	relative := formatDeadlineRelative(deadline, now)
	if !deadline.After(now) {
		return absolute + " " + s.Warning.Render("("+relative+")")
	}

	style := lipgloss.NewStyle().Foreground(deadlineColor(deadline, now))
	return absolute + " " + style.Render("("+relative+")")
}

func formatDeadlineRelative(deadline, now time.Time) string {
	if !deadline.After(now) {
		return "passed"
	}

	remaining := deadline.Sub(now)
	switch {
	case remaining < time.Hour:
		minutes := int(math.Ceil(remaining.Minutes()))
		return "in " + plural(minutes, "minute")
	case remaining < 24*time.Hour:
		return "in " + plural(int(math.Ceil(remaining.Hours())), "hour")
	default:
		return "in " + plural(int(math.Ceil(remaining.Hours()/24)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// deadlineColor brightens from grey to white over the last week.
func deadlineColor(deadline, now time.Time) lipgloss.Color {
	const window = 7 * 24 * time.Hour

	remaining := deadline.Sub(now)
	if remaining >= window {
		return lipgloss.Color("240")
	}

	normalized := 1 - remaining.Seconds()/window.Seconds()
	return lipgloss.Color(fmt.Sprintf("%d", 240+int(15*normalized)))
}

func depositValue(deposit, amount *big.Int, s Styles) string {
	text := formatEther(deposit)
	if amount == nil || amount.Sign() <= 0 {
		return text
	}

	return renderProgressBar(depositFraction(deposit, amount), depositBarWidth, s) + " " + text
}

func depositFraction(deposit, amount *big.Int) float64 {
	if deposit == nil || deposit.Sign() <= 0 {
		return 0
	}
	if deposit.Cmp(amount) >= 0 {
		return 1
	}

	ratio, _ := new(big.Rat).SetFrac(deposit, amount).Float64()
	return ratio
}

func renderProgressBar(fraction float64, width int, s Styles) string {
	filled := int(math.Round(float64(width) * fraction))
	filled = max(0, min(width, filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func formatEther(value *big.Int) string {
	if value == nil {
		return "0 ETH"
	}
	return domain.FormatEther(value) + " ETH"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
