package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

type fuelService struct {
	fuelRepo    repository.FuelRepository
	vehicleRepo repository.VehicleRepository
}

func NewFuelService(fuelRepo repository.FuelRepository, vehicleRepo repository.VehicleRepository) FuelService {
	return &fuelService{fuelRepo: fuelRepo, vehicleRepo: vehicleRepo}
}

func (s *fuelService) RemainingLiters(ctx context.Context, orgID int32) (float64, error) {
	loads, err := s.fuelRepo.ListTankLoads(ctx, orgID)
	if err != nil {
		return 0, err
	}
	refills, err := s.fuelRepo.ListRefills(ctx, orgID)
	if err != nil {
		return 0, err
	}
	return remainingLiters(loads, refills), nil
}

func remainingLiters(loads []domain.FuelTankLoad, refills []domain.FuelRefill) float64 {
	var remaining float64
	for _, l := range loads {
		remaining += l.Liters
	}
	for _, r := range refills {
		remaining -= r.LitersRefilled
	}
	return remaining
}

// ComputeDispensed is the form-preview helper: litersAfter minus litersBefore.
// ok is false when either input does not parse as a number; the authoritative
// value is recomputed server-side at write time with the same formula.
func ComputeDispensed(before, after string) (float64, bool) {
	b, err := strconv.ParseFloat(strings.TrimSpace(before), 64)
	if err != nil {
		return 0, false
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
	if err != nil {
		return 0, false
	}
	return a - b, true
}

func (s *fuelService) ProposeLitersBefore(ctx context.Context, orgID int32) (*float64, error) {
	last, err := s.fuelRepo.LastRefill(ctx, orgID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	liters := last.LitersAfter
	return &liters, nil
}

func (s *fuelService) Statistics(ctx context.Context, orgID int32, year, month string) (*domain.FuelStatistics, error) {
	refills, err := s.fuelRepo.ListRefills(ctx, orgID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return buildFuelStatistics(refills, vehicles, year, month), nil
}

func buildFuelStatistics(refills []domain.FuelRefill, vehicles []domain.Vehicle, year, month string) *domain.FuelStatistics {
	names := make(map[int32]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = v.Name
	}

	var filtered []domain.FuelRefill
	for _, r := range refills {
		if year != "" && refillYear(r.RefillDate) != year {
			continue
		}
		if month != "" && refillMonth(r.RefillDate) != month {
			continue
		}
		filtered = append(filtered, r)
	}

	stats := &domain.FuelStatistics{
		ByVehicle: []domain.VehicleFuelStat{},
		ByMonth:   []domain.MonthlyFuelStat{},
	}

	byVehicle := make(map[int32]*domain.VehicleFuelStat)
	for _, r := range filtered {
		stat, ok := byVehicle[r.VehicleID]
		if !ok {
			stat = &domain.VehicleFuelStat{VehicleID: r.VehicleID, VehicleName: names[r.VehicleID]}
			byVehicle[r.VehicleID] = stat
		}
		stat.TotalLiters += r.LitersRefilled
		stat.RefillCount++
	}
	for _, stat := range byVehicle {
		if stat.RefillCount > 0 {
			stat.AverageLiters = stat.TotalLiters / float64(stat.RefillCount)
		}
		stats.ByVehicle = append(stats.ByVehicle, *stat)
	}
	sort.Slice(stats.ByVehicle, func(i, j int) bool {
		return stats.ByVehicle[i].VehicleName < stats.ByVehicle[j].VehicleName
	})

	// A single redundant bucket is pointless when the caller already filtered
	// down to one month.
	if month == "" {
		byMonth := make(map[string]*domain.MonthlyFuelStat)
		for _, r := range filtered {
			m := refillMonth(r.RefillDate)
			if m == "" {
				continue
			}
			stat, ok := byMonth[m]
			if !ok {
				stat = &domain.MonthlyFuelStat{Month: m}
				byMonth[m] = stat
			}
			stat.TotalLiters += r.LitersRefilled
			stat.RefillCount++
		}
		for _, stat := range byMonth {
			stats.ByMonth = append(stats.ByMonth, *stat)
		}
		sort.Slice(stats.ByMonth, func(i, j int) bool {
			return stats.ByMonth[i].Month < stats.ByMonth[j].Month
		})
	}

	return stats
}

// refillYear and refillMonth slice the YYYY-MM-DD date string directly, the
// same way the statistics filters are expressed upstream.
func refillYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[0:4]
}

func refillMonth(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[5:7]
}

func (s *fuelService) AddTankLoad(ctx context.Context, load *domain.FuelTankLoad) error {
	if load.Liters <= 0 {
		return fmt.Errorf("%w: liters must be positive", domain.ErrValidation)
	}
	return s.fuelRepo.CreateTankLoad(ctx, load)
}

func (s *fuelService) DeleteTankLoad(ctx context.Context, id, orgID int32) error {
	return s.fuelRepo.DeleteTankLoad(ctx, id, orgID)
}

func (s *fuelService) ListTankLoads(ctx context.Context, orgID int32) ([]domain.FuelTankLoad, error) {
	return s.fuelRepo.ListTankLoads(ctx, orgID)
}

func (s *fuelService) AddRefill(ctx context.Context, refill *domain.FuelRefill) error {
	if refill.LitersRefilled < 0 {
		return fmt.Errorf("%w: liters refilled must not be negative", domain.ErrValidation)
	}
	if math.Abs(refill.LitersRefilled-(refill.LitersAfter-refill.LitersBefore)) > 1e-9 {
		return fmt.Errorf("%w: liters refilled must equal liters after minus liters before", domain.ErrValidation)
	}
	// A litersBefore that disagrees with the last known litersAfter is not
	// rejected; the pre-fill is advisory only.
	if _, err := s.vehicleRepo.GetByID(ctx, refill.VehicleID, refill.OrgID); err != nil {
		return err
	}
	return s.fuelRepo.CreateRefill(ctx, refill)
}

func (s *fuelService) DeleteRefill(ctx context.Context, id, orgID int32) error {
	return s.fuelRepo.DeleteRefill(ctx, id, orgID)
}

func (s *fuelService) ListRefills(ctx context.Context, orgID int32) ([]domain.FuelRefill, error) {
	return s.fuelRepo.ListRefills(ctx, orgID)
}
