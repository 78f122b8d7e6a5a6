package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/voicedesk/booking-api/internal/config"
	"github.com/voicedesk/booking-api/internal/repository"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

type postgresRepository struct {
	writerDB          *gorm.DB
	readerDB          *gorm.DB
	tenantRepo        repository.TenantRepository
	businessHoursRepo repository.BusinessHoursRepository
	appointmentRepo   repository.AppointmentRepository
	callRepo          repository.CallRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:          dbConnections.Writer,
		readerDB:          dbConnections.Reader,
		tenantRepo:        NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		businessHoursRepo: NewBusinessHoursRepository(dbConnections.Writer, dbConnections.Reader),
		appointmentRepo:   NewAppointmentRepository(dbConnections.Writer, dbConnections.Reader),
		callRepo:          NewCallRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) BusinessHours() repository.BusinessHoursRepository {
	return r.businessHoursRepo
}

func (r *postgresRepository) Appointment() repository.AppointmentRepository {
	return r.appointmentRepo
}

func (r *postgresRepository) Call() repository.CallRepository {
	return r.callRepo
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// failure. The gorm postgres driver surfaces these as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
