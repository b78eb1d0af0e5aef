package store

import (
	"context"

	"github.com/google/uuid"

	"roster/internal/soldier/models"
	"roster/pkg/domain"
)

// Reference ids shared with the 0002_reference_data migration.
var (
	RankRecruit  = domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000101"))
	RankPrivate  = domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000102"))
	RankCorporal = domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000105"))
	RankSergeant = domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000106"))
	RankCaptain  = domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000110"))

	UnitHeadquarters  = domain.UnitID(uuid.MustParse("00000000-0000-4000-8000-000000000201"))
	UnitFirstPlatoon  = domain.UnitID(uuid.MustParse("00000000-0000-4000-8000-000000000202"))
	UnitSecondPlatoon = domain.UnitID(uuid.MustParse("00000000-0000-4000-8000-000000000203"))

	QualificationCLS      = domain.QualificationID(uuid.MustParse("00000000-0000-4000-8000-000000000301"))
	QualificationMarksman = domain.QualificationID(uuid.MustParse("00000000-0000-4000-8000-000000000302"))

	AwardAchievement  = domain.AwardID(uuid.MustParse("00000000-0000-4000-8000-000000000401"))
	AwardCommendation = domain.AwardID(uuid.MustParse("00000000-0000-4000-8000-000000000402"))
)

// SeedReferenceData loads the same ranks, units, qualifications and awards the
// migrations insert, so in-memory runs behave like a fresh database.
func SeedReferenceData(s *InMemoryStore) {
	ctx := context.Background()
	ranks := []models.Rank{
		{ID: RankRecruit, Name: "Recruit", Abbreviation: "RCT", SortOrder: 1},
		{ID: RankPrivate, Name: "Private", Abbreviation: "PVT", SortOrder: 2},
		{ID: domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000103")), Name: "Private First Class", Abbreviation: "PFC", SortOrder: 3},
		{ID: domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000104")), Name: "Specialist", Abbreviation: "SPC", SortOrder: 4},
		{ID: RankCorporal, Name: "Corporal", Abbreviation: "CPL", SortOrder: 5},
		{ID: RankSergeant, Name: "Sergeant", Abbreviation: "SGT", SortOrder: 6},
		{ID: domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000107")), Name: "Staff Sergeant", Abbreviation: "SSG", SortOrder: 7},
		{ID: domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000108")), Name: "Second Lieutenant", Abbreviation: "2LT", SortOrder: 8},
		{ID: domain.RankID(uuid.MustParse("00000000-0000-4000-8000-000000000109")), Name: "First Lieutenant", Abbreviation: "1LT", SortOrder: 9},
		{ID: RankCaptain, Name: "Captain", Abbreviation: "CPT", SortOrder: 10},
	}
	for i := range ranks {
		_ = s.SaveRank(ctx, &ranks[i])
	}

	hq := UnitHeadquarters
	units := []models.Unit{
		{ID: UnitHeadquarters, Name: "Headquarters", Abbreviation: "HQ"},
		{ID: UnitFirstPlatoon, Name: "1st Platoon", Abbreviation: "1PLT", ParentID: &hq},
		{ID: UnitSecondPlatoon, Name: "2nd Platoon", Abbreviation: "2PLT", ParentID: &hq},
	}
	for i := range units {
		_ = s.SaveUnit(ctx, &units[i])
	}

	quals := []models.Qualification{
		{ID: QualificationCLS, Name: "Combat Lifesaver", Abbreviation: "CLS", Description: "Basic field medical care"},
		{ID: QualificationMarksman, Name: "Marksman", Abbreviation: "DMR", Description: "Designated marksman rifle"},
		{ID: domain.QualificationID(uuid.MustParse("00000000-0000-4000-8000-000000000303")), Name: "Rotary Wing Pilot", Abbreviation: "RW", Description: "Helicopter pilot"},
	}
	for i := range quals {
		_ = s.SaveQualification(ctx, &quals[i])
	}

	awards := []models.Award{
		{ID: AwardAchievement, Name: "Army Achievement Medal", Description: "Meritorious service or achievement", Precedence: 10},
		{ID: AwardCommendation, Name: "Army Commendation Medal", Description: "Sustained acts of heroism or meritorious service", Precedence: 20},
		{ID: domain.AwardID(uuid.MustParse("00000000-0000-4000-8000-000000000403")), Name: "Bronze Star Medal", Description: "Heroic or meritorious achievement in combat", Precedence: 30},
	}
	for i := range awards {
		_ = s.SaveAward(ctx, &awards[i])
	}
}
