package components

import (
	"renobooking/internal/infra/db"
	"renobooking/internal/infra/repository"
	"renobooking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewTemplateRepository,
			fx.As(new(usecase.TemplateRepository)),
			fx.As(new(usecase.TemplateWriter)),
		),
		fx.Annotate(
			repository.NewOverrideRepository,
			fx.As(new(usecase.OverrideRepository)),
			fx.As(new(usecase.OverrideWriter)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.BookedTimesRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
