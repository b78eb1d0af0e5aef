package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	attmodels "roster/internal/attendance/models"
	srmodels "roster/internal/servicerecord/models"
	servicerecord "roster/internal/servicerecord/service"
	"roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
)

// Profile is the read model behind a soldier's page.
type Profile struct {
	Soldier        *models.Soldier
	Rank           *models.Rank
	Unit           *models.Unit
	History        []*srmodels.Entry
	Assignments    []*srmodels.Entry
	Qualifications []*models.HeldQualification
	Awards         []*models.HeldAward
	// Discipline is only loaded for leadership viewers.
	Discipline   []*models.DisciplinaryAction
	Attendance   *attmodels.SoldierSummary
	CombatRecord []*attmodels.CombatEntry
}

// Roster is the active roster with the lookups needed to render it.
type Roster struct {
	Soldiers []*models.Soldier
	Ranks    map[domain.RankID]*models.Rank
	Units    []*models.Unit
}

// Orbat is the order of battle: the unit tree with active soldiers placed in it.
type Orbat struct {
	Units []*models.OrbatNode
	Ranks map[domain.RankID]*models.Rank
}

// Profile loads a soldier and everything shown alongside it. Service history is
// filtered to what the viewer may read.
func (s *Service) Profile(ctx context.Context, viewer domain.Actor, id domain.SoldierID) (*Profile, error) {
	if err := viewer.Authorize(domain.RoleMember); err != nil {
		return nil, err
	}
	soldier, err := s.loadSoldier(ctx, id)
	if err != nil {
		return nil, err
	}
	p := &Profile{Soldier: soldier}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rank, err := s.store.FindRank(gctx, soldier.RankID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return err
		}
		p.Rank = rank
		return nil
	})
	if soldier.UnitID != nil {
		g.Go(func() error {
			unit, err := s.store.FindUnit(gctx, *soldier.UnitID)
			if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return err
			}
			p.Unit = unit
			return nil
		})
	}
	g.Go(func() error {
		history, err := s.ledger.History(gctx, soldier.ID, viewer, soldier.UserID)
		if err != nil {
			return err
		}
		p.History = history
		p.Assignments = servicerecord.AssignmentHistory(history)
		return nil
	})
	g.Go(func() (err error) {
		p.Qualifications, err = s.store.ListQualifications(gctx, soldier.ID)
		return err
	})
	g.Go(func() (err error) {
		p.Awards, err = s.store.ListAwards(gctx, soldier.ID)
		return err
	})
	if viewer.Can(domain.RoleNCO) {
		g.Go(func() (err error) {
			p.Discipline, err = s.store.ListDiscipline(gctx, soldier.ID)
			return err
		})
	}
	if s.attendance != nil {
		g.Go(func() error {
			summary, err := s.attendance.SoldierSummary(gctx, soldier.ID)
			if err != nil {
				return err
			}
			p.Attendance = &summary
			return nil
		})
		g.Go(func() (err error) {
			p.CombatRecord, err = s.attendance.CombatRecord(gctx, soldier.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		var de *dErrors.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load soldier profile")
	}
	return p, nil
}

// Roster lists active soldiers, most senior first.
func (s *Service) Roster(ctx context.Context, viewer domain.Actor) (*Roster, error) {
	if err := viewer.Authorize(domain.RoleMember); err != nil {
		return nil, err
	}
	return s.loadRoster(ctx)
}

// Orbat arranges the active roster into the public unit tree. No role is required.
func (s *Service) Orbat(ctx context.Context) (*Orbat, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	return &Orbat{
		Units: models.BuildOrbat(r.Units, r.Soldiers),
		Ranks: r.Ranks,
	}, nil
}

func (s *Service) loadRoster(ctx context.Context) (*Roster, error) {
	r := &Roster{Ranks: make(map[domain.RankID]*models.Rank)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		r.Soldiers, err = s.store.ListByStatus(gctx, models.StatusActive)
		return err
	})
	g.Go(func() (err error) {
		r.Units, err = s.store.ListUnits(gctx)
		return err
	})
	g.Go(func() error {
		ranks, err := s.store.ListRanks(gctx)
		if err != nil {
			return err
		}
		for _, rank := range ranks {
			r.Ranks[rank.ID] = rank
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load roster")
	}
	return r, nil
}
