package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/worldcup-sim/internal/service"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// htmlWriter keeps the first write error so components can write freely and
// check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func Index(snap service.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>World Cup 2026</title></head><body>`)
		h.raw(`<h1>World Cup 2026</h1>`)

		if err := adminBar(ctx).Render(ctx, w); err != nil {
			return err
		}
		if err := StandingsTables(snap.Standings).Render(ctx, w); err != nil {
			return err
		}
		if err := QualifiersTable(snap.Qualifiers).Render(ctx, w); err != nil {
			return err
		}
		if err := Bracket(PrepareBracketData(snap.Knockout), IsAdmin(ctx)).Render(ctx, w); err != nil {
			return err
		}

		h.raw(`</body></html>`)
		return h.err
	})
}

func adminBar(ctx context.Context) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		if IsAdmin(ctx) {
			h.raw(`<form method="post" action="/admin/logout"><button type="submit">Log out</button></form>`)
			h.raw(`<form method="post" action="/api/reset"><button type="submit">Reset tournament</button></form>`)
		} else {
			h.raw(`<form method="post" action="/admin/login"><input type="password" name="passcode" placeholder="Admin passcode"><button type="submit">Log in</button></form>`)
		}
		return h.err
	})
}

func StandingsTables(standings tournament.Standings) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="standings"><h2>Group Stage</h2>`)
		for _, label := range standings.Labels() {
			h.raw(`<table class="group"><caption>Group `)
			h.text(label)
			h.raw(`</caption>`)
			standingsRows(h, standings[label])
			h.raw(`</table>`)
		}
		h.raw(`</section>`)
		return h.err
	})
}

func QualifiersTable(qualifiers []tournament.GroupStanding) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="qualifiers"><h2>Best third-placed teams</h2><table>`)
		standingsRows(h, qualifiers)
		h.raw(`</table></section>`)
		return h.err
	})
}

func standingsRows(h *htmlWriter, rows []tournament.GroupStanding) {
	h.raw(`<tr><th>#</th><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>GD</th><th>Pts</th></tr>`)
	for _, row := range rows {
		id := row.TeamID
		h.raw(`<tr>`)
		for _, cell := range []string{
			strconv.Itoa(row.Rank),
			tournament.TeamName(&id),
			strconv.Itoa(row.Played), strconv.Itoa(row.Won), strconv.Itoa(row.Drawn), strconv.Itoa(row.Lost),
			strconv.Itoa(row.GoalsFor), strconv.Itoa(row.GoalsAgainst), signed(row.GoalDifference), strconv.Itoa(row.Points),
		} {
			h.raw(`<td>`)
			h.text(cell)
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
}

func Bracket(data BracketData, admin bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="bracket"><h2>Knockout Stage</h2>`)
		for _, round := range data.Rounds {
			h.raw(`<div class="round"><h3>`)
			h.text(string(round.Stage))
			h.raw(`</h3>`)
			for _, m := range round.Matches {
				matchCard(h, m, admin)
			}
			h.raw(`</div>`)
		}
		if data.ThirdPlace != nil {
			h.raw(`<div class="round"><h3>`)
			h.text(string(tournament.StageThirdPlace))
			h.raw(`</h3>`)
			matchCard(h, *data.ThirdPlace, admin)
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
		return h.err
	})
}

func matchCard(h *htmlWriter, m tournament.Match, admin bool) {
	h.raw(`<div class="match" id="`)
	h.text(m.ID)
	h.raw(`"><span class="id">`)
	h.text(m.ID)
	h.raw(`</span> <span class="home">`)
	h.text(tournament.TeamName(m.HomeTeamID))
	h.raw(`</span> <span class="score">`)
	h.text(ScoreLine(m))
	h.raw(`</span> <span class="away">`)
	h.text(tournament.TeamName(m.AwayTeamID))
	h.raw(`</span>`)

	if admin && m.HomeTeamID != nil && m.AwayTeamID != nil {
		h.raw(`<form method="post" action="/api/matches/`)
		h.text(m.ID)
		h.raw(`/score"><input type="number" min="0" name="home_score"><input type="number" min="0" name="away_score"><button type="submit">Save</button></form>`)
	}
	h.raw(`</div>`)
}
