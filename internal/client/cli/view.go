package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/client/projector"
	"github.com/dmitrijs2005/fieldsync/internal/client/services"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	remoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	localStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
)

func renderView(w io.Writer, v projector.View) {
	fmt.Fprintln(w, headerStyle.Render("Reports for "+v.SiteID))
	if v.Stale {
		when := "never"
		if !v.FetchedAt.IsZero() {
			when = v.FetchedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintln(w, warningStyle.Render("offline: server list from "+when))
	}
	if len(v.Records) == 0 {
		fmt.Fprintln(w, labelStyle.Render("  no reports"))
		return
	}
	for _, r := range v.Records {
		fmt.Fprintln(w, renderRecord(r))
	}
}

func renderRecord(r projector.DisplayRecord) string {
	captured := r.CapturedAt.Local().Format(time.DateTime)

	if r.Provenance == projector.ProvenanceRemote {
		rep := r.Report
		return fmt.Sprintf("  %s %s  %s  %s",
			remoteStyle.Render("[remote]"), r.ID, captured,
			labelStyle.Render(summary(len(rep.Observations), len(rep.Measurements), len(rep.Actions))))
	}

	d := r.Draft
	tag := localStyle.Render("[awaiting sync]")
	switch d.SyncState {
	case models.SyncStateFailed:
		tag = failedStyle.Render("[failed]")
	case models.SyncStateSyncing:
		tag = localStyle.Render("[syncing]")
	}
	line := fmt.Sprintf("  %s %s  %s  %s", tag, r.ID, captured,
		labelStyle.Render(summary(len(d.Observations), len(d.Measurements), len(d.Actions))))
	if d.Attempts > 0 {
		line += labelStyle.Render(fmt.Sprintf("  attempts %d: %s", d.Attempts, d.LastError))
	}
	return line
}

func summary(obs, meas, acts int) string {
	return fmt.Sprintf("%d obs / %d meas / %d actions", obs, meas, acts)
}

func renderStatus(w io.Writer, st services.Status) {
	state := remoteStyle.Render("online")
	if !st.Online {
		state = warningStyle.Render("offline")
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("connectivity:"), state)

	pending := fmt.Sprintf("%d", st.Pending)
	if st.Pending > 0 {
		pending = localStyle.Render(pending)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("pending:     "), pending)
	if st.SiteID != "" {
		fmt.Fprintf(w, "%s %d (%s)\n", labelStyle.Render("this site:   "), st.SitePending, st.SiteID)
	}
	if st.Syncing {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("sync:        "), "running")
	}
	last := "never"
	if !st.LastSyncAt.IsZero() {
		last = st.LastSyncAt.Local().Format(time.DateTime)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("last sync:   "), last)
}

func (a *App) List(ctx context.Context) error {
	site := a.currentSite()
	if site == "" {
		return fmt.Errorf("select a site first: site <id>")
	}
	v, err := a.viewer.Project(ctx, site)
	if err != nil {
		return err
	}
	renderView(a.out, v)
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st, err := a.drafts.Status(ctx, a.currentSite())
	if err != nil {
		return err
	}
	renderStatus(a.out, st)
	return nil
}

// promptStatus is shown in the prompt: site, connectivity and pending badge.
func (a *App) promptStatus() string {
	parts := make([]string, 0, 3)
	if site := a.currentSite(); site != "" {
		parts = append(parts, site)
	}
	if a.online.Online() {
		parts = append(parts, "online")
	} else {
		parts = append(parts, "offline")
	}
	if n := a.pendingBadge(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d pending", n))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
