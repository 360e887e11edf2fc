package seed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

func run(ctx context.Context, deps CommandDeps) error {
	if err := createSchema(ctx, deps); err != nil {
		return err
	}
	if err := seedAdmin(ctx, deps); err != nil {
		return err
	}
	if err := seedDirectors(ctx, deps); err != nil {
		return err
	}
	return seedProperties(ctx, deps)
}

func createSchema(ctx context.Context, deps CommandDeps) error {
	models := []any{
		(*model.Property)(nil),
		(*model.Inquiry)(nil),
		(*model.Director)(nil),
		(*model.Account)(nil),
		(*model.Session)(nil),
	}
	for _, m := range models {
		if _, err := deps.DB.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, "failed to create table")
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, deps CommandDeps) error {
	_, err := deps.AccountRepo.GetAccountByUsername(ctx, deps.Conf.SeedAdminUsername)
	if err == nil {
		log.Info().Str("username", deps.Conf.SeedAdminUsername).Msg("admin account already exists, skipping")
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	if deps.Conf.SeedAdminPassword == "" {
		return errors.New("MILIMANI_SEED_ADMIN_PASSWORD must be set to provision the admin account")
	}

	account, err := deps.AccountService.CreateAccount(ctx, deps.Conf.SeedAdminUsername, deps.Conf.SeedAdminPassword)
	if err != nil {
		return err
	}

	log.Info().Str("username", account.Username).Msg("created admin account")
	return nil
}

func seedDirectors(ctx context.Context, deps CommandDeps) error {
	count, err := deps.DirectorRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("directors already present, skipping")
		return nil
	}

	directors := []*model.Director{
		{
			Name:      "Margaret Njoroge",
			Position:  "Managing Director",
			Bio:       "Over two decades in Nairobi real estate, leading the firm since its founding.",
			ImageURL:  "/images/directors/margaret-njoroge.jpg",
			Email:     null.StringFrom("margaret@milimani.co.ke"),
			SortOrder: 1,
		},
		{
			Name:      "David Otieno",
			Position:  "Director, Sales & Lettings",
			Bio:       "Heads the sales team and oversees valuations across the Nairobi metro.",
			ImageURL:  "/images/directors/david-otieno.jpg",
			Email:     null.StringFrom("david@milimani.co.ke"),
			SortOrder: 2,
		},
		{
			Name:      "Amina Hassan",
			Position:  "Director, Commercial Property",
			Bio:       "Specialises in commercial lettings and land acquisition in Upper Hill and Westlands.",
			ImageURL:  "/images/directors/amina-hassan.jpg",
			Email:     null.StringFrom("amina@milimani.co.ke"),
			SortOrder: 3,
		},
	}
	for _, d := range directors {
		if err := deps.DirectorRepo.Create(ctx, d); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(directors)).Msg("seeded directors")
	return nil
}

func seedProperties(ctx context.Context, deps CommandDeps) error {
	count, err := deps.PropertyRepo.Count(ctx, &types.PropertyFilter{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("properties already present, skipping")
		return nil
	}

	properties := []*model.Property{
		{
			Title:       "4 Bedroom Townhouse in Kilimani",
			Description: "Spacious townhouse in a gated community off Argwings Kodhek Road, with a private garden and DSQ.",
			Price:       38_500_000,
			Location:    "Kilimani, Nairobi",
			Type:        constant.PropertyTypeResidential,
			Status:      constant.PropertyStatusForSale,
			Size:        280,
			Bedrooms:    null.IntFrom(4),
			Bathrooms:   null.IntFrom(3),
			Parking:     null.IntFrom(2),
			Features:    []string{"Gated community", "Private garden", "DSQ", "Borehole"},
			Images:      []string{"/images/listings/kilimani-townhouse-1.jpg"},
			Featured:    true,
		},
		{
			Title:       "Office Suite on Upper Hill",
			Description: "Fitted office suite on the 12th floor with views over the Nairobi skyline. Ample basement parking.",
			Price:       250_000,
			Location:    "Upper Hill, Nairobi",
			Type:        constant.PropertyTypeCommercial,
			Status:      constant.PropertyStatusForRent,
			Size:        150,
			Offices:     null.IntFrom(6),
			Parking:     null.IntFrom(4),
			Features:    []string{"Backup generator", "High-speed lifts", "Basement parking"},
			Images:      []string{"/images/listings/upper-hill-office-1.jpg"},
		},
		{
			Title:       "Half Acre Plot in Karen",
			Description: "Prime half acre residential plot along Marula Lane with a clean title deed, ready to build.",
			Price:       27_000_000,
			Location:    "Karen, Nairobi",
			Type:        constant.PropertyTypeLand,
			Status:      constant.PropertyStatusForSale,
			Size:        2023,
			Features:    []string{"Clean title deed", "Perimeter wall", "Borehole water"},
			Images:      []string{"/images/listings/karen-plot-1.jpg"},
			Featured:    true,
		},
	}
	for _, p := range properties {
		if err := deps.PropertyRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(properties)).Msg("seeded starter listings")
	return nil
}
