package postgres

import (
	"database/sql"

	"fieldwork-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.FuelRepository
	repository.ReportRepository
	repository.WorkOrderRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		VehicleRepository:   NewVehicleRepository(db),
		FuelRepository:      NewFuelRepository(db),
		ReportRepository:    NewReportRepository(db),
		WorkOrderRepository: NewWorkOrderRepository(db),
	}
}
