package league

import "sort"

// sortMatchesNewestFirst orders matches by date descending with undated
// fixtures last.
func sortMatchesNewestFirst(ms []MatchRecord) {
	sort.SliceStable(ms, func(i, j int) bool {
		di, dj := "", ""
		if ms[i].Date != nil {
			di = *ms[i].Date
		}
		if ms[j].Date != nil {
			dj = *ms[j].Date
		}
		return di > dj
	})
}

func decorate(m MatchRecord, entities map[int]Entity) Fixture {
	return Fixture{
		MatchID:    m.MatchID,
		Season:     m.Season,
		Phase:      m.Phase,
		Date:       m.Date,
		WinnerID:   m.WinnerID,
		WinnerName: entities[m.WinnerID].Name,
		LoserID:    m.LoserID,
		LoserName:  entities[m.LoserID].Name,
		PointDiff:  m.PointDiff,
	}
}

// GroupFixtures arranges matches by conference (taken from the winner's
// roster entry) and then by bracket phase in canonical order, newest match
// first within a phase. Matches referencing unknown entities are skipped.
func GroupFixtures(entities map[int]Entity, matches []MatchRecord) []ConferenceFixtures {
	ms := make([]MatchRecord, len(matches))
	copy(ms, matches)
	sortMatchesNewestFirst(ms)

	type phaseMap struct {
		phases map[string][]Fixture
		extra  []string // phases outside the canonical order, as seen
	}
	known := make(map[string]bool, len(PhaseOrder))
	for _, p := range PhaseOrder {
		known[p] = true
	}

	confs := make(map[string]*phaseMap)
	var confOrder []string
	for _, m := range ms {
		w, ok := entities[m.WinnerID]
		if !ok {
			continue
		}
		if _, ok := entities[m.LoserID]; !ok {
			continue
		}
		pm, ok := confs[w.Conference]
		if !ok {
			pm = &phaseMap{phases: make(map[string][]Fixture)}
			confs[w.Conference] = pm
			confOrder = append(confOrder, w.Conference)
		}
		if _, seen := pm.phases[m.Phase]; !seen && !known[m.Phase] {
			pm.extra = append(pm.extra, m.Phase)
		}
		pm.phases[m.Phase] = append(pm.phases[m.Phase], decorate(m, entities))
	}
	sort.Strings(confOrder)

	out := make([]ConferenceFixtures, 0, len(confOrder))
	for _, conf := range confOrder {
		pm := confs[conf]
		cf := ConferenceFixtures{Conference: conf}
		for _, phase := range PhaseOrder {
			if fs, ok := pm.phases[phase]; ok {
				cf.Phases = append(cf.Phases, PhaseGroup{Phase: phase, Fixtures: fs})
			}
		}
		sort.Strings(pm.extra)
		for _, phase := range pm.extra {
			cf.Phases = append(cf.Phases, PhaseGroup{Phase: phase, Fixtures: pm.phases[phase]})
		}
		out = append(out, cf)
	}
	return out
}

// BuildEntityDetail assembles one entity's profile: identity, full match
// history newest first, and the completed-match record. The second return
// value is false for an unknown entity id.
func BuildEntityDetail(entities map[int]Entity, matches []MatchRecord, id int) (EntityDetail, bool) {
	e, ok := entities[id]
	if !ok {
		return EntityDetail{}, false
	}

	var ms []MatchRecord
	for _, m := range matches {
		if m.WinnerID != id && m.LoserID != id {
			continue
		}
		if _, ok := entities[m.WinnerID]; !ok {
			continue
		}
		if _, ok := entities[m.LoserID]; !ok {
			continue
		}
		ms = append(ms, m)
	}
	sortMatchesNewestFirst(ms)

	detail := EntityDetail{Entity: e}
	detail.Record = EntitySummary{ID: e.ID, Name: e.Name}
	for _, m := range ms {
		em := EntityMatch{Fixture: decorate(m, entities), Result: "Loss"}
		if m.WinnerID == id {
			em.Result = "Win"
		}
		detail.Matches = append(detail.Matches, em)

		if m.PointDiff == nil {
			continue
		}
		detail.Record.MatchesPlayed++
		if m.WinnerID == id {
			detail.Record.Wins++
			detail.Record.PointDiff += *m.PointDiff
		} else {
			detail.Record.Losses++
			detail.Record.PointDiff -= *m.PointDiff
		}
	}
	return detail, true
}
