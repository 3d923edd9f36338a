package service

import (
	"context"
	"fmt"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if !domain.ValidFuelType(vehicle.Fuel) {
		return fmt.Errorf("%w: unknown fuel type %q", domain.ErrValidation, vehicle.Fuel)
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id, orgID int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id, orgID)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if !domain.ValidFuelType(vehicle.Fuel) {
		return fmt.Errorf("%w: unknown fuel type %q", domain.ErrValidation, vehicle.Fuel)
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

// DeleteVehicle removes the vehicle and cascades to its refill history.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id, orgID int32) error {
	return s.vehicleRepo.Delete(ctx, id, orgID)
}

func (s *vehicleService) ListVehicles(ctx context.Context, orgID int32) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByOrg(ctx, orgID)
}
